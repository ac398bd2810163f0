// Package poll waits for a translation job to reach a terminal status.
//
// It is a caller-side convenience built on top of the client: the client
// itself never sleeps or re-issues requests. Each attempt is one call to the
// supplied Fetcher, typically a closure over Client.GetTranslation.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/unbabel/tapi/client"
)

// ErrNotDone is returned when the backoff policy gives up before the job
// reaches a terminal status.
var ErrNotDone = errors.New("job not in a terminal status")

// errPending marks an attempt that observed a non-terminal status.
var errPending = errors.New("pending")

// Fetcher returns the current representation of a job.
type Fetcher func(ctx context.Context) (*client.Response, error)

// StatusError reports a non-2xx response while polling.
type StatusError struct {
	Response *client.Response
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("poll: status %d: %s", e.Response.StatusCode, e.Response.String())
}

type config struct {
	statusPath string
	newBackOff func() backoff.BackOff
}

// Option configures UntilDone.
type Option func(*config)

// WithStatusPath reads the job status from a gjson path other than "status".
func WithStatusPath(path string) Option {
	return func(c *config) { c.statusPath = path }
}

// WithBackOff sets the wait policy between attempts. The factory is called
// once per UntilDone.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *config) { c.newBackOff = newBackOff }
}

// DefaultBackOff starts at 2s, doubles up to 30s and gives up after 10m.
func DefaultBackOff() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 2 * time.Second
	exp.Multiplier = 2
	exp.MaxInterval = 30 * time.Second
	exp.MaxElapsedTime = 10 * time.Minute
	exp.Reset()
	return exp
}

// UntilDone calls fetch until the job status is terminal (completed, failed,
// canceled, accepted or rejected) and returns that response. Transport errors
// and non-2xx responses stop polling immediately. When the policy or ctx
// expires first, the last response is returned together with an error
// wrapping ErrNotDone or the context error.
func UntilDone(ctx context.Context, fetch Fetcher, opts ...Option) (*client.Response, error) {
	cfg := config{statusPath: "status", newBackOff: DefaultBackOff}
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		last       *client.Response
		lastStatus client.JobStatus
	)
	op := func() (*client.Response, error) {
		resp, err := fetch(ctx)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		last = resp
		if !resp.IsSuccess() {
			return nil, backoff.Permanent(&StatusError{Response: resp})
		}
		lastStatus = client.JobStatus(resp.Get(cfg.statusPath).String())
		if lastStatus.Terminal() {
			return resp, nil
		}
		return nil, errPending
	}
	notify := func(_ error, next time.Duration) {
		log.Debug().Str("status", lastStatus.String()).Dur("next_attempt_in", next).Msg("job not done yet")
	}

	resp, err := backoff.RetryNotifyWithData(op, backoff.WithContext(cfg.newBackOff(), ctx), notify)
	if err == nil {
		return resp, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && (errors.Is(err, ctxErr) || errors.Is(err, errPending)) {
		return last, fmt.Errorf("poll: last status %q: %w", lastStatus, ctxErr)
	}
	if errors.Is(err, errPending) {
		return last, fmt.Errorf("poll: last status %q: %w", lastStatus, ErrNotDone)
	}
	return last, err
}
