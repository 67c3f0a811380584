package dyndns

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

const defaultBaseURL = "https://api.cloudflare.com/client/v4"

var discard = log.New(io.Discard, "", log.LstdFlags)

// Client is a bearer-token authenticated client for the Cloudflare v4 REST
// API. It owns a Cache which it fills lazily; construct a fresh Client per
// run rather than sharing one across goroutines.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
	cache      *Cache
}

func NewClient(token string, options ...ClientOption) *Client {
	c := &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     discard,
		cache:      NewCache(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

type ClientOption func(*Client)

// WithBaseURL points the client at a different API root. Mainly useful for
// tests talking to a local server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithHTTPClient(httpclient *http.Client) ClientOption {
	return func(c *Client) {
		if httpclient == nil {
			httpclient = http.DefaultClient
		}
		c.httpClient = httpclient
	}
}

func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		if logger == nil {
			logger = discard
		}
		c.logger = logger
	}
}

// WithCache replaces the client's record cache, letting callers inspect what
// a run discovered.
func WithCache(cache *Cache) ClientOption {
	return func(c *Client) {
		if cache == nil {
			cache = NewCache()
		}
		c.cache = cache
	}
}

// envelope is the uniform wrapper Cloudflare places around every response.
type envelope[T any] struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
	Result  *T       `json:"result"`
}

func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	return doJSON[T](ctx, c, http.MethodGet, path, nil)
}

func putJSON[T any](ctx context.Context, c *Client, path string, body []byte) (T, error) {
	return doJSON[T](ctx, c, http.MethodPut, path, body)
}

// doJSON performs a single request against the API and unwraps the envelope.
// There are no retries; every failure mode maps to exactly one of
// NetworkError, DecodeError, or APIError.
func doJSON[T any](ctx context.Context, c *Client, method, path string, body []byte) (result T, err error) {
	url := c.baseURL + "/" + path

	var payload io.Reader
	if body != nil {
		payload = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return result, &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, &NetworkError{URL: url, Err: err}
	}

	// The success flag decides the outcome, not the HTTP status code.
	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return result, &DecodeError{URL: url, Err: err}
	}
	if !env.Success {
		return result, &APIError{Messages: env.Errors}
	}
	if env.Result == nil {
		return result, &DecodeError{URL: url, Err: errors.New("envelope reported success without a result")}
	}
	return *env.Result, nil
}
