// Package http implements the DataAPI HTTP engine: request assembly,
// authentication headers, bounded retry with exponential backoff, and
// response classification into typed errors.
package http

import (
	"bufio"
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/acproject/dataapi-sdks/pkg/dataapi"
)

// Request is the canonical form of one API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	// Timeout overrides the configured per-attempt timeout for this call.
	Timeout time.Duration
}

// Response carries the raw outcome of a successful exchange.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Client executes Requests against one base URL. It is safe for
// concurrent use; setters replace snapshots observed by subsequent
// calls.
type Client struct {
	baseURL   string
	userAgent string

	mu             sync.RWMutex
	auth           dataapi.AuthProvider
	defaultHeaders map[string]string
	timeout        time.Duration

	transport  *http.Transport
	httpClient *retryablehttp.Client

	logger dataapi.Logger
	debug  bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug records.
func WithLogger(logger dataapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables per-attempt request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig sets the retry budget: maxRetries additional attempts,
// backoff starting at waitMin and capped at waitMax.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithDefaultHeaders sets headers attached to every request, below auth
// and per-call headers in precedence.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.defaultHeaders = make(map[string]string, len(headers))
		for key, value := range headers {
			c.defaultHeaders[key] = value
		}
	}
}

// WithTLSVerification toggles TLS certificate verification.
func WithTLSVerification(verify bool) Option {
	return func(c *Client) {
		c.transport.TLSClientConfig.InsecureSkipVerify = !verify
	}
}

// WithProxy routes requests through the given HTTP proxy URL.
func WithProxy(proxyURL string) Option {
	return func(c *Client) {
		parsed, err := url.Parse(proxyURL)
		if err != nil {
			return
		}

		c.transport.Proxy = http.ProxyURL(parsed)
	}
}

// WithConnectionPoolSize caps idle connections kept per host.
func WithConnectionPoolSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.transport.MaxIdleConnsPerHost = size
		}
	}
}

// NewClient creates an HTTP engine bound to baseURL. A nil auth
// provider means unauthenticated requests.
func NewClient(baseURL string, auth dataapi.AuthProvider, opts ...Option) *Client {
	transport := cleanhttp.DefaultPooledTransport()
	transport.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	transport.MaxIdleConnsPerHost = dataapi.DefaultConnectionPoolSize

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   dataapi.DefaultTimeout,
	}
	retryClient.RetryMax = dataapi.DefaultMaxRetries
	retryClient.RetryWaitMin = dataapi.DefaultRetryDelay
	retryClient.RetryWaitMax = 30 * time.Second
	retryClient.Logger = nil
	retryClient.CheckRetry = checkRetry
	retryClient.Backoff = retryBackoff
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  "DataAPI-SDK/" + dataapi.SDKVersion,
		auth:       auth,
		timeout:    dataapi.DefaultTimeout,
		transport:  transport,
		httpClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.RequestLogHook = client.logRequest
	retryClient.ResponseLogHook = client.logResponse

	return client
}

// checkRetry retries transport failures, 429, and 5xx. Client errors
// are never retried.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return true, nil
	}

	return false, nil
}

// retryBackoff grows the wait exponentially from the base delay. For
// rate limiting and service unavailability a server-supplied
// Retry-After extends the sleep when it asks for more.
func retryBackoff(waitMin, waitMax time.Duration, attemptNum int, resp *http.Response) time.Duration {
	wait := waitMin << uint(attemptNum)
	if wait > waitMax {
		wait = waitMax
	}

	if resp != nil && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable) {
		if seconds := parseRetryAfter(resp.Header.Get("Retry-After")); seconds > 0 {
			if after := time.Duration(seconds) * time.Second; after > wait {
				wait = after
			}
		}
	}

	return wait
}

// Do executes one call: URL composition, header assembly, body
// encoding, bounded retry, and classification. Non-2xx outcomes return
// both the raw Response and a *dataapi.Error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, dataapi.ErrRequestRequired
	}

	resp, err := c.doOnce(ctx, req)

	// A 401 triggers at most one provider refresh and one re-issue.
	if resp != nil && resp.StatusCode == http.StatusUnauthorized {
		c.mu.RLock()
		auth := c.auth
		c.mu.RUnlock()

		if auth != nil && auth.Refresh(ctx) {
			resp, err = c.doOnce(ctx, req)
		}
	}

	return resp, err
}

// retryClientFor returns the shared retry client, or a copy whose
// per-attempt timeout is overridden when the request carries one. The
// copy shares the transport and retry settings.
func (c *Client) retryClientFor(timeout time.Duration) *retryablehttp.Client {
	if timeout <= 0 {
		return c.httpClient
	}

	override := *c.httpClient
	inner := *override.HTTPClient
	inner.Timeout = timeout
	override.HTTPClient = &inner

	return &override
}

func (c *Client) doOnce(ctx context.Context, req *Request) (*Response, error) {
	fullURL := BuildURL(c.baseURL, req.Path, req.Query)
	method := strings.ToUpper(req.Method)

	body, err := encodeBody(method, req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, &dataapi.Error{
			Kind:    dataapi.ErrorKindNetwork,
			Message: "building request",
			Method:  method,
			URL:     fullURL,
			Err:     err,
		}
	}

	c.applyHeaders(httpReq, req, body != nil)

	httpResp, err := c.retryClientFor(req.Timeout).Do(httpReq)
	if err != nil {
		return nil, c.classifyTransport(method, fullURL, req.Timeout, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &dataapi.Error{
			Kind:    dataapi.ErrorKindNetwork,
			Message: "reading response body",
			Method:  method,
			URL:     fullURL,
			Err:     err,
		}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
		Headers:    httpResp.Header,
	}

	if httpResp.StatusCode >= 200 && httpResp.StatusCode < 300 {
		return resp, nil
	}

	return resp, classifyResponse(method, fullURL, req.Path, resp)
}

// encodeBody serialises the request body as compact JSON. Bodies on
// GET, HEAD, and DELETE are discarded.
func encodeBody(method string, body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	switch method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return nil, nil
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, &dataapi.Error{
			Kind:    dataapi.ErrorKindValidation,
			Message: "encoding request body",
			Err:     err,
		}
	}

	return encoded, nil
}

// applyHeaders assembles the header map. Later sources win on the same
// case-insensitive key: user agent, default headers, auth headers,
// caller headers, then an implied Content-Type for JSON bodies.
func (c *Client) applyHeaders(httpReq *retryablehttp.Request, req *Request, hasBody bool) {
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")

	c.mu.RLock()
	for key, value := range c.defaultHeaders {
		httpReq.Header.Set(key, value)
	}

	if c.auth != nil {
		for key, value := range c.auth.Headers() {
			httpReq.Header.Set(key, value)
		}
	}
	c.mu.RUnlock()

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if hasBody && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if httpReq.Header.Get("X-Request-ID") == "" {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Head issues a HEAD request.
func (c *Client) Head(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodHead, Path: path})
}

// TestConnection reports whether HEAD /health answers with a 2xx. It
// never returns an error.
func (c *Client) TestConnection(ctx context.Context) bool {
	resp, err := c.Head(ctx, "/health")

	return err == nil && resp != nil && resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Stream executes a request and delivers the response body to onChunk
// line by line as it arrives. Streaming calls are never retried. The
// returned bytes are the concatenated chunk payloads.
func (c *Client) Stream(ctx context.Context, req *Request, onChunk func([]byte) error) ([]byte, error) {
	fullURL := BuildURL(c.baseURL, req.Path, req.Query)
	method := strings.ToUpper(req.Method)

	body, err := encodeBody(method, req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(body))
	if err != nil {
		return nil, &dataapi.Error{
			Kind:    dataapi.ErrorKindNetwork,
			Message: "building request",
			Method:  method,
			URL:     fullURL,
			Err:     err,
		}
	}

	retryReq := &retryablehttp.Request{Request: httpReq}
	c.applyHeaders(retryReq, req, body != nil)
	httpReq.Header.Set("Accept", "text/event-stream")

	httpResp, err := c.httpClient.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, c.classifyTransport(method, fullURL, req.Timeout, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(httpResp.Body)
		resp := &Response{StatusCode: httpResp.StatusCode, Body: respBody, Headers: httpResp.Header}

		return nil, classifyResponse(method, fullURL, req.Path, resp)
	}

	var accumulated bytes.Buffer

	scanner := bufio.NewScanner(httpResp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()

		chunk, found := bytes.CutPrefix(line, []byte("data: "))
		if !found {
			chunk = line
		}

		if len(bytes.TrimSpace(chunk)) == 0 || bytes.Equal(chunk, []byte("[DONE]")) {
			continue
		}

		accumulated.Write(chunk)

		if onChunk != nil {
			if err := onChunk(chunk); err != nil {
				return accumulated.Bytes(), fmt.Errorf("stream callback: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return accumulated.Bytes(), c.classifyTransport(method, fullURL, req.Timeout, err)
	}

	return accumulated.Bytes(), nil
}

// SetAuthProvider replaces the auth provider observed by subsequent
// calls.
func (c *Client) SetAuthProvider(auth dataapi.AuthProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.auth = auth
}

// AuthProvider returns the current auth provider.
func (c *Client) AuthProvider() dataapi.AuthProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.auth
}

// SetTimeout replaces the per-attempt timeout for subsequent calls.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timeout = timeout
	c.httpClient.HTTPClient.Timeout = timeout
}

// SetVerifySSL toggles TLS certificate verification for subsequent
// calls. In-flight calls may observe either setting.
func (c *Client) SetVerifySSL(verify bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transport.TLSClientConfig.InsecureSkipVerify = !verify
}

// SetProxy routes subsequent calls through the given HTTP proxy URL. An
// empty URL restores direct connections.
func (c *Client) SetProxy(proxyURL string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if proxyURL == "" {
		c.transport.Proxy = nil

		return nil
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("parsing proxy URL: %w", err)
	}

	c.transport.Proxy = http.ProxyURL(parsed)

	return nil
}

// BaseURL returns the base URL this engine is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the transport.
func (c *Client) Close() error {
	c.transport.CloseIdleConnections()

	return nil
}

// logRequest emits one record per attempt with secrets redacted.
func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
		"headers": redactHeaders(req.Header),
	})
}

// logResponse emits one record per received response.
func (c *Client) logResponse(_ retryablehttp.Logger, resp *http.Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"status":  resp.StatusCode,
		"url":     resp.Request.URL.String(),
		"headers": redactHeaders(resp.Header),
	})
}

// redactHeaders masks Authorization and API key headers.
func redactHeaders(headers http.Header) map[string]string {
	redacted := make(map[string]string, len(headers))

	for key, values := range headers {
		if strings.EqualFold(key, "Authorization") || strings.EqualFold(key, dataapi.DefaultAPIKeyHeader) {
			redacted[key] = "***"

			continue
		}

		redacted[key] = strings.Join(values, ", ")
	}

	return redacted
}
