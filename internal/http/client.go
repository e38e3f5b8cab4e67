// Package http implements the HTTP session wrapper for the Aeris API. It
// forwards requests to the underlying transport, prefixing the configured
// base URL and injecting the client credentials into every query string. It
// performs no retries and no interpretation of response payloads.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/aerisweather/aerisweather-api-go/internal/constants"
	"github.com/aerisweather/aerisweather-api-go/pkg/aeris"
)

// Client wraps an http.Client with base URL and credential injection.
// Configuration is fixed at construction; a Client is safe for concurrent
// use to the extent the underlying http.Client is.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	userAgent    string
	logger       aeris.Logger
	debug        bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client. Timeouts and connection
// pooling are configured there.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger aeris.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// NewClient creates a new session wrapper for the given base URL and
// credentials.
func NewClient(baseURL, clientID, clientSecret string, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   cleanhttp.DefaultPooledClient(),
		userAgent:    constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request describes one request to be made against the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	// Body is JSON-encoded when non-nil.
	Body interface{}
}

// Do issues the request against {baseURL}/{path} with client_id and
// client_secret merged into the query string. The response is returned for
// any status code; the error return is reserved for transport-level
// failures, which propagate unchanged and without retry.
func (c *Client) Do(ctx context.Context, req *Request) (*aeris.HTTPResponse, error) {
	fullURL := c.url(req.Path)

	query := url.Values{}
	for key, vals := range req.Query {
		query[key] = vals
	}

	query.Set(constants.ParamClientID, c.clientID)
	query.Set(constants.ParamClientSecret, c.clientSecret)

	fullURL += "?" + query.Encode()

	var bodyReader io.Reader

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("aeris api request", map[string]interface{}{
			"method": req.Method,
			"url":    redactSecret(httpReq.URL),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("aeris api response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"bytes":  len(body),
		})
	}

	return &aeris.HTTPResponse{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}

// Get issues a GET request against the given path.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*aeris.HTTPResponse, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  params,
	})
}

// Post issues a POST request with a JSON body against the given path.
func (c *Client) Post(ctx context.Context, path string, params url.Values, body interface{}) (*aeris.HTTPResponse, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Query:  params,
		Body:   body,
	})
}

// url joins the base URL and a relative path.
func (c *Client) url(path string) string {
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

// redactSecret renders a request URL with the client secret masked so debug
// logs never carry the credential.
func redactSecret(u *url.URL) string {
	redacted := *u
	query := redacted.Query()

	if query.Has(constants.ParamClientSecret) {
		query.Set(constants.ParamClientSecret, "REDACTED")
	}

	redacted.RawQuery = query.Encode()

	return redacted.String()
}
