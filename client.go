// Package client is a Go SDK for the Unbabel translation API (tapi v2).
//
// Every method issues exactly one request through the injected Transport and
// returns the response as received. Non-2xx statuses are not errors; only
// local validation failures (ErrInvalidArgument) and transport failures are.
package client

import (
	"context"
	"strings"

	"github.com/unbabel/tapi/client/internal/api"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is immutable after New and safe for concurrent use when its
// Transport is.
type Client struct {
	cfg     Config
	baseURL string
	api     *api.Dispatcher
}

// New constructs a Client for the credentials and environment in cfg. The
// transport is used as given; passing nil is a programming error.
func New(cfg Config, t Transport, opts ...Option) *Client {
	c := &Client{
		cfg:     cfg,
		baseURL: api.BaseURL(cfg.Sandbox),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	c.api = api.NewDispatcher(t, strings.TrimSuffix(c.baseURL, "/"), cfg.Username, cfg.APIKey)
	return c
}

// BuildRequestURL returns the absolute URL for an API path such as
// "/translation/".
func (c *Client) BuildRequestURL(path string) string {
	return c.api.BuildRequestURL(path)
}

// AuthHeaders returns the Authorization and Content-Type headers sent with
// every request.
func (c *Client) AuthHeaders() map[string]string {
	return c.api.AuthHeaders()
}

// Sandbox reports whether the client targets the sandbox environment.
func (c *Client) Sandbox() bool { return c.cfg.Sandbox }

// --------------------------------------------------------------------
// Translation operations - delegated to internal/api
// --------------------------------------------------------------------

// SubmitTranslation requests a translation of text into targetLanguage.
// Fields in opts (source_language, callback_url, formality, instructions,
// text_format, ...) are merged after the base fields and win on collision.
func (c *Client) SubmitTranslation(ctx context.Context, text, targetLanguage string, opts Options) (*Response, error) {
	return api.SubmitTranslation(ctx, c.api, text, targetLanguage, opts)
}

// SubmitBulkTranslation submits several translations in one request. opts are
// shared defaults: fields already set on an entry are kept. The i-th object
// sent corresponds to entries[i].
func (c *Client) SubmitBulkTranslation(ctx context.Context, entries []TranslationRequest, opts Options) (*Response, error) {
	return api.SubmitBulkTranslation(ctx, c.api, entries, opts)
}

// GetTranslation fetches the job identified by uid.
func (c *Client) GetTranslation(ctx context.Context, uid string) (*Response, error) {
	return api.GetTranslation(ctx, c.api, uid)
}

// GetJobsWithStatus lists jobs in status. Unknown statuses fail with
// ErrInvalidArgument and no request is sent.
func (c *Client) GetJobsWithStatus(ctx context.Context, status string) (*Response, error) {
	return api.GetJobsWithStatus(ctx, c.api, status)
}

// --------------------------------------------------------------------
// XLIFF operations
// --------------------------------------------------------------------

// SubmitXliffOrder submits an XLIFF document for translation into
// targetLanguage.
func (c *Client) SubmitXliffOrder(ctx context.Context, content, targetLanguage string, opts Options) (*Response, error) {
	return api.SubmitXliffOrder(ctx, c.api, content, targetLanguage, opts)
}

// GetXliffOrder fetches the XLIFF order identified by uid.
func (c *Client) GetXliffOrder(ctx context.Context, uid string) (*Response, error) {
	return api.GetXliffOrder(ctx, c.api, uid)
}

// --------------------------------------------------------------------
// Reference data
// --------------------------------------------------------------------

// GetLanguagePairs lists the available language pairs.
func (c *Client) GetLanguagePairs(ctx context.Context) (*Response, error) {
	return api.GetLanguagePairs(ctx, c.api)
}

// GetTones lists the available tones.
func (c *Client) GetTones(ctx context.Context) (*Response, error) {
	return api.GetTones(ctx, c.api)
}

// GetTopics lists the available topics.
func (c *Client) GetTopics(ctx context.Context) (*Response, error) {
	return api.GetTopics(ctx, c.api)
}

// GetWordCount returns the API's word count for text.
func (c *Client) GetWordCount(ctx context.Context, text string) (*Response, error) {
	return api.GetWordCount(ctx, c.api, text)
}
