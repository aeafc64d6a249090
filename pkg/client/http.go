package client

import (
	"context"
	"io"
	"net/http"
	"time"
)

const defaultUserAgent = "apploc-cli"

type requestOption func(*requestOpts)

func requestHeader(header http.Header) requestOption {
	return func(r *requestOpts) {
		r.header = header
	}
}

func requestContext(ctx context.Context) requestOption {
	return func(r *requestOpts) {
		r.ctx = ctx
	}
}

func requestTimeout(timeout time.Duration) requestOption {
	return func(r *requestOpts) {
		r.timeout = timeout
	}
}

func requestClient(c *http.Client) requestOption {
	return func(r *requestOpts) {
		r.client = c
	}
}

type requestOpts struct {
	ctx     context.Context
	body    io.Reader
	header  http.Header
	timeout time.Duration
	client  *http.Client
}

func newRequest(method, url string, opts ...requestOption) (*http.Response, error) {
	r := new(requestOpts)
	for _, opt := range opts {
		opt(r)
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}

	req, err := http.NewRequestWithContext(r.ctx, method, url, r.body)
	if err != nil {
		return nil, err
	}
	for k, v := range r.header {
		req.Header[k] = v
	}

	client := new(http.Client)
	if r.client != nil {
		*client = *r.client
	}
	if r.timeout > 0 {
		client.Timeout = r.timeout
	}

	return client.Do(req)
}

func get(url string, opts ...requestOption) (*http.Response, error) {
	return newRequest(http.MethodGet, url, opts...)
}
