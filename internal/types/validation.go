package types

import (
	"context"
	"fmt"
	"net/url"

	sdkerrors "github.com/unbabel/tapi/client/internal/errors"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Transport is the HTTP capability the client dispatches through. Non-2xx
// responses are returned as responses; only transport failures are errors.
type Transport interface {
	Get(ctx context.Context, url string, headers map[string]string, query url.Values) (*Response, error)
	Post(ctx context.Context, url string, headers map[string]string, body []byte) (*Response, error)
	Patch(ctx context.Context, url string, headers map[string]string, body []byte) (*Response, error)
}

// ------------------------------
// Validation
// ------------------------------

// ValidateJobStatus checks status against the canonical set. Legacy names are
// rejected with a hint naming their replacement.
func ValidateJobStatus(status string) (JobStatus, error) {
	s := JobStatus(status)
	if s.Valid() {
		return s, nil
	}
	allowed := make([]string, len(jobStatuses))
	for i, v := range jobStatuses {
		allowed[i] = string(v)
	}
	err := sdkerrors.NewArgumentError("status", status, allowed...)
	if repl, ok := legacyStatuses[status]; ok {
		err.Hint = fmt.Sprintf("%q is a legacy status name, use %q", status, repl)
	}
	return "", err
}
