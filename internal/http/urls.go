package http

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// JoinPath joins a base URL and a path with exactly one slash between
// them, regardless of trailing or leading slashes on either side.
func JoinPath(base, path string) string {
	base = strings.TrimRight(base, "/")

	if path == "" {
		return base
	}

	return base + "/" + strings.TrimLeft(path, "/")
}

// isUnreserved reports whether c may appear unescaped in a query
// component per RFC 3986.
func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	}

	return false
}

// PercentEncode escapes every byte outside the RFC 3986 unreserved set.
// Spaces become %20, never '+'.
func PercentEncode(s string) string {
	var builder strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			builder.WriteByte(c)
		} else {
			builder.WriteByte('%')
			builder.WriteByte(upperhex[c>>4])
			builder.WriteByte(upperhex[c&0xf])
		}
	}

	return builder.String()
}

// EncodeQuery renders values as a query string with keys in sorted
// order and both keys and values percent-encoded.
func EncodeQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var builder strings.Builder

	for _, key := range keys {
		for _, value := range values[key] {
			if builder.Len() > 0 {
				builder.WriteByte('&')
			}

			builder.WriteString(PercentEncode(key))
			builder.WriteByte('=')
			builder.WriteString(PercentEncode(value))
		}
	}

	return builder.String()
}

// ParseQuery decodes a query string produced by EncodeQuery back into
// url.Values.
func ParseQuery(query string) (url.Values, error) {
	values := url.Values{}

	if query == "" {
		return values, nil
	}

	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")

		decodedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, fmt.Errorf("decoding query key %q: %w", key, err)
		}

		decodedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("decoding query value %q: %w", value, err)
		}

		values.Add(decodedKey, decodedValue)
	}

	return values, nil
}

// BuildURL composes the final request URL from a base, a path, and an
// optional query.
func BuildURL(base, path string, query url.Values) string {
	result := JoinPath(base, path)

	if encoded := EncodeQuery(query); encoded != "" {
		result += "?" + encoded
	}

	return result
}
