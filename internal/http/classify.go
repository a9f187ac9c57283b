package http

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// classifyResponse maps a non-2xx response to a typed error. The body
// is parsed as JSON best-effort; unparseable bodies are attached raw.
func classifyResponse(method, fullURL, path string, resp *Response) error {
	kind := dataapi.KindForStatus(resp.StatusCode)

	apiErr := &dataapi.Error{
		Kind:       kind,
		Message:    http.StatusText(resp.StatusCode),
		StatusCode: resp.StatusCode,
		RequestID:  resp.Headers.Get("X-Request-ID"),
		Method:     method,
		URL:        fullURL,
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(resp.Body, &parsed); err == nil && parsed != nil {
		apiErr.ResponseBody = parsed

		if code, ok := parsed["code"].(string); ok {
			apiErr.Code = code
		}

		if message, ok := parsed["message"].(string); ok && message != "" {
			apiErr.Message = message
		}
	} else if len(resp.Body) > 0 {
		apiErr.RawBody = string(resp.Body)
	}

	switch kind {
	case dataapi.ErrorKindValidation:
		if field, ok := apiErr.ResponseBody["field"].(string); ok {
			apiErr.Field = field
		}

		if rules, ok := apiErr.ResponseBody["rules"].([]interface{}); ok {
			for _, rule := range rules {
				if s, ok := rule.(string); ok {
					apiErr.Rules = append(apiErr.Rules, s)
				}
			}
		}
	case dataapi.ErrorKindNotFound:
		apiErr.ResourceType, apiErr.ResourceID = resourceFromPath(path)
	case dataapi.ErrorKindRateLimit:
		apiErr.RetryAfter = parseRetryAfter(resp.Headers.Get("Retry-After"))
	}

	return apiErr
}

// classifyTransport maps a pre-response failure to a timeout or
// network error with status 0.
func (c *Client) classifyTransport(method, fullURL string, reqTimeout time.Duration, err error) error {
	timeout := reqTimeout
	if timeout <= 0 {
		c.mu.RLock()
		timeout = c.timeout
		c.mu.RUnlock()
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &dataapi.Error{
			Kind:      dataapi.ErrorKindTimeout,
			Message:   "request timed out",
			Method:    method,
			URL:       fullURL,
			TimeoutMs: int(timeout / time.Millisecond),
			Err:       err,
		}
	}

	return &dataapi.Error{
		Kind:    dataapi.ErrorKindNetwork,
		Message: "request failed",
		Method:  method,
		URL:     fullURL,
		Err:     err,
	}
}

// resourceFromPath derives a resource type and id from a request path
// like /workflows/wf-1. The type is the singular form of the first
// collection segment; the id is the final segment when distinct.
func resourceFromPath(path string) (string, string) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "", ""
	}

	resourceType := strings.TrimSuffix(segments[0], "s")

	if len(segments) > 1 {
		return resourceType, segments[len(segments)-1]
	}

	return resourceType, ""
}

// parseRetryAfter reads an integer-seconds Retry-After value. Dates and
// malformed values report 0.
func parseRetryAfter(value string) int {
	if value == "" {
		return 0
	}

	seconds, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || seconds < 0 {
		return 0
	}

	return seconds
}
