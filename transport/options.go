package transport

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Resty transport during construction in NewResty.
//
// Options are applied in order, so WithRoundTripper must come before
// WithDebugLogging for the debug wrapper to sit on top of it.
type Option func(*Resty) error

// WithTimeout bounds the total time of a single request, including
// connection, redirects and reading the body. Prefer context deadlines for
// per-call limits; this is a coarse safety net. The value must be > 0.
func WithTimeout(d time.Duration) Option {
	return func(r *Resty) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		r.client.SetTimeout(d)
		return nil
	}
}

// WithRoundTripper replaces the underlying http.RoundTripper, e.g. for a
// proxy-aware transport or a test double.
func WithRoundTripper(rt http.RoundTripper) Option {
	return func(r *Resty) error {
		if rt == nil {
			return fmt.Errorf("round tripper cannot be nil")
		}
		r.client.SetTransport(rt)
		return nil
	}
}

// WithDebugLogging wraps the current round tripper so each request/response
// is dumped at debug level. Do not enable in production: dumps include the
// API key.
func WithDebugLogging(enabled bool) Option {
	return func(r *Resty) error {
		if !enabled {
			return nil
		}
		base := r.client.GetClient().Transport
		if base == nil {
			base = http.DefaultTransport
		}
		if _, ok := base.(*debugTransport); ok {
			return nil
		}
		r.client.SetTransport(&debugTransport{base: base})
		return nil
	}
}
