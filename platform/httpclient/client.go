// Package httpclient is the transport used by the remote use cases. It turns
// every HTTP exchange into a Response value; only failures that prevent a
// response (dial, TLS, cancelled context) are returned as errors.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"survey_client/platform/logger"
)

const (
	defaultTimeout = 10 * time.Second
	// maxBodyBytes bounds how much of a response body is buffered.
	maxBodyBytes = 4 << 20
)

// Response is a completed HTTP exchange. Body holds the raw payload, which
// may be empty.
type Response struct {
	StatusCode int
	Body       []byte
}

// DecodeJSON unmarshals the body into dst.
func (r Response) DecodeJSON(dst any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal(r.Body, dst)
}

// PostClient posts a JSON body. A nil body sends no payload.
type PostClient interface {
	Post(ctx context.Context, url string, body any) (Response, error)
}

// GetClient performs a GET with optional extra headers.
type GetClient interface {
	Get(ctx context.Context, url string, headers http.Header) (Response, error)
}

// Config configures the transport client.
type Config struct {
	Timeout time.Duration
}

// Client implements PostClient and GetClient over net/http.
type Client struct {
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a transport client.
func New(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Discard()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
		log: log,
	}
}

// CloseIdleConnections releases pooled keep-alive connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Post sends body as JSON to url.
func (c *Client) Post(ctx context.Context, url string, body any) (Response, error) {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req)
}

// Get requests url, adding headers to the request.
func (c *Client) Get(ctx context.Context, url string, headers http.Header) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) (Response, error) {
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.OutboundFailure(req.Method, req.URL.String(), err)
		return Response{}, fmt.Errorf("%s %s: %w", req.Method, req.URL.Redacted(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.OutboundFailure(req.Method, req.URL.String(), err)
		return Response{}, fmt.Errorf("read response body: %w", err)
	}

	c.log.OutboundRequest(req.Method, req.URL.String(), resp.StatusCode, time.Since(start))

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}

var (
	_ PostClient = (*Client)(nil)
	_ GetClient  = (*Client)(nil)
)
