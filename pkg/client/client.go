package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultEndpoint = "https://api.apploc.dev"

	projectDataPath = "/getProjectData"
	maxErrorBody    = 512
)

// RequestError is returned when the API could not be reached, answered with
// a non-2xx status or sent an unreadable envelope.
type RequestError struct {
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to AppLoc API failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request to AppLoc API failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// RemoteError is returned when the API answered with ok=false.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	if len(e.Message) == 0 {
		return "AppLoc API rejected the request"
	}
	return e.Message
}

type envelope struct {
	OK      bool   `json:"ok"`
	Data    string `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

type Client struct {
	endpoint   string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
}

func New(opts ...Option) *Client {
	c := &Client{endpoint: DefaultEndpoint, userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(c)
	}

	if !strings.HasPrefix(c.endpoint, "http") {
		c.endpoint = "https://" + c.endpoint
	}
	c.endpoint = strings.TrimSuffix(c.endpoint, "/")

	return c
}

func (c *Client) projectDataURL(id, secret string) string {
	q := url.Values{}
	q.Set("id", id)
	q.Set("secret", secret)
	return c.endpoint + projectDataPath + "?" + q.Encode()
}

// GetProjectData fetches the project payload. The returned string is the
// JSON document embedded in the envelope's data field.
func (c *Client) GetProjectData(ctx context.Context, id, secret string) (string, error) {
	hdr := http.Header{}
	hdr.Set("Accept", "application/json")
	hdr.Set("User-Agent", c.userAgent)

	resp, err := get(c.projectDataURL(id, secret),
		requestContext(ctx),
		requestHeader(hdr),
		requestTimeout(c.timeout),
		requestClient(c.httpClient),
	)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = c.projectDataURL(id, "REDACTED")
		}
		return "", &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &RequestError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s: %q", resp.Status, strings.TrimSpace(string(b))),
		}
	}

	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", &RequestError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !env.OK {
		return "", &RemoteError{Message: env.Message}
	}

	return env.Data, nil
}
