package client

// This file defines functional options that configure the Client during
// construction. Transport-level knobs (timeouts, debug logging) live in the
// transport package since the transport is injected.

import (
	"fmt"
	"net/url"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithBaseURL replaces the environment-selected API root, e.g. to point the
// client at a proxy or a test server. The value must be an absolute URL;
// a trailing slash is dropped.
func WithBaseURL(root string) Option {
	return func(c *Client) error {
		u, err := url.Parse(root)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url must be absolute: %q", root)
		}
		c.baseURL = root
		return nil
	}
}
