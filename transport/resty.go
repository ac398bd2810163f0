// Package transport provides the default HTTP transport for the client
// package, built on go-resty.
package transport

import (
	"context"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/unbabel/tapi/client"
)

const defaultTimeout = 30 * time.Second

// Resty implements client.Transport. It is safe for concurrent use. Non-2xx
// responses are returned as responses, never as errors, and nothing is
// retried.
type Resty struct {
	client *resty.Client
}

var _ client.Transport = (*Resty)(nil)

// NewResty builds a transport with a 30s timeout. Debug logging is enabled
// automatically when UNBABEL_DEBUG or DEBUG is "true".
func NewResty(opts ...Option) *Resty {
	r := &Resty{client: resty.New().SetTimeout(defaultTimeout)}

	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			panic(err)
		}
	}
	return r
}

// Get sends a GET with query appended to endpoint.
func (r *Resty) Get(ctx context.Context, endpoint string, headers map[string]string, query url.Values) (*client.Response, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetQueryParamsFromValues(query).
		Get(endpoint)
	return toResponse(resp, err)
}

// Post sends body, already JSON-encoded, as a POST.
func (r *Resty) Post(ctx context.Context, endpoint string, headers map[string]string, body []byte) (*client.Response, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetBody(body).
		Post(endpoint)
	return toResponse(resp, err)
}

// Patch sends body, already JSON-encoded, as a PATCH.
func (r *Resty) Patch(ctx context.Context, endpoint string, headers map[string]string, body []byte) (*client.Response, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetBody(body).
		Patch(endpoint)
	return toResponse(resp, err)
}

func toResponse(resp *resty.Response, err error) (*client.Response, error) {
	if err != nil {
		return nil, err
	}
	return &client.Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
