// Package httpapi provides the REST client used by API-level tests.
//
// The client is rooted at the configured API base URL, applies the API
// timeout to every request, and sends the API key as a bearer token when
// one is configured.
package httpapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/seamq/seam/pkg/config"
)

// Client wraps a resty client with the framework's conventions.
type Client struct {
	rc  *resty.Client
	log *zap.Logger
}

// ClientOptions configures a new Client. BaseURL is required; the rest is
// optional.
type ClientOptions struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Headers map[string]string
	Logger  *zap.Logger
}

// FromConfig builds client options from the run configuration.
func FromConfig(cfg config.Config, log *zap.Logger) ClientOptions {
	return ClientOptions{
		BaseURL: cfg.APIBaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.APITimeout.Std(),
		Logger:  log,
	}
}

// New creates a client for the given options.
func New(opts ClientOptions) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/"))

	if opts.Timeout > 0 {
		rc.SetTimeout(opts.Timeout)
	}
	if opts.APIKey != "" {
		rc.SetAuthToken(opts.APIKey)
	}
	for k, v := range opts.Headers {
		rc.SetHeader(k, v)
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{rc: rc, log: log}
}

// Get performs a GET request. params go into the query string; result, when
// non-nil, receives the unmarshaled JSON body.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string, result interface{}) (*resty.Response, error) {
	req := c.request(ctx, result)
	if params != nil {
		req.SetQueryParams(params)
	}
	return c.execute(req.Get, endpoint, "GET")
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}, result interface{}) (*resty.Response, error) {
	req := c.request(ctx, result)
	if body != nil {
		req.SetBody(body)
	}
	return c.execute(req.Post, endpoint, "POST")
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body interface{}, result interface{}) (*resty.Response, error) {
	req := c.request(ctx, result)
	if body != nil {
		req.SetBody(body)
	}
	return c.execute(req.Put, endpoint, "PUT")
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) (*resty.Response, error) {
	return c.execute(c.request(ctx, nil).Delete, endpoint, "DELETE")
}

func (c *Client) request(ctx context.Context, result interface{}) *resty.Request {
	req := c.rc.R().SetContext(ctx)
	if result != nil {
		req.SetResult(result)
	}
	return req
}

func (c *Client) execute(do func(string) (*resty.Response, error), endpoint, method string) (*resty.Response, error) {
	path := "/" + strings.TrimLeft(endpoint, "/")

	resp, err := do(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, path, err)
	}

	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", resp.Time()))

	return resp, nil
}
