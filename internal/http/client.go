// Package http implements the single-request transport core of the SDK.
//
// Every logical operation is executed as exactly one HTTP round trip through
// Client.Do, and every outcome is classified deterministically into one of
// the cloudlift error kinds: a non-2xx response becomes an api error carrying
// the verbatim body, an elapsed timeout becomes a timeout error, and any
// other failure to complete the round trip becomes a transport error. No
// retries are attempted under any classification.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cloudlift-io/cloudlift-client/internal/constants"
	"github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
	"github.com/hashicorp/go-cleanhttp"
)

// Client handles HTTP communication with the Cloudlift API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	debug      bool
	logger     cloudlift.Logger
}

// Request represents one logical API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string

	// Body is JSON-serialized when set. Mutually exclusive with RawBody.
	Body interface{}

	// RawBody is sent verbatim with ContentType. Used for multipart forms.
	RawBody     []byte
	ContentType string

	// Timeout overrides the client timeout for this request only.
	Timeout time.Duration
}

// Response represents an API response with a 2xx status.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger cloudlift.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response trace logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new HTTP client for the given endpoint and token. The
// endpoint must already be normalized (no trailing slash).
func NewClient(baseURL, token string, opts ...Option) *Client {
	client := &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: cleanhttp.DefaultPooledClient(),
		timeout:    constants.DefaultHTTPTimeout,
		userAgent:  constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Timeout returns the effective per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Do executes one request and classifies the outcome. The returned error is
// always a *cloudlift.Error; on api errors the response is returned alongside
// it so callers can inspect the status directly.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, cloudlift.NewTransportError(req.Path, err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportFailure(req.Path, timeout, err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, classifyTransportFailure(req.Path, timeout, err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"path":   req.Path,
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return resp, cloudlift.NewAPIError(httpResp.StatusCode, body, req.Path)
	}

	return resp, nil
}

// buildRequest assembles the http.Request with merged headers and body.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var (
		bodyReader  io.Reader
		contentType string
	)

	switch {
	case req.RawBody != nil:
		bodyReader = bytes.NewReader(req.RawBody)
		contentType = req.ContentType
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

// classifyTransportFailure distinguishes an elapsed timeout from every other
// failure to complete the round trip.
func classifyTransportFailure(path string, timeout time.Duration, err error) *cloudlift.Error {
	if errors.Is(err, context.DeadlineExceeded) {
		return cloudlift.NewTimeoutError(path, timeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return cloudlift.NewTimeoutError(path, timeout, err)
	}

	// url.Error prefixes the verb and full URL; strip the wrapper so the
	// description reads as the underlying cause.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return cloudlift.NewTransportError(path, urlErr.Err)
	}

	return cloudlift.NewTransportError(path, err)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// PostRaw performs a POST request with a pre-encoded body and explicit
// content type. Used for multipart form uploads.
func (c *Client) PostRaw(ctx context.Context, path string, body []byte, contentType string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:      http.MethodPost,
		Path:        path,
		RawBody:     body,
		ContentType: contentType,
	})
}

// NormalizeEndpoint strips a trailing slash and assumes https when no scheme
// is present.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
