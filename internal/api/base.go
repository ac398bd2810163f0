package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	sdkerrors "github.com/unbabel/tapi/client/internal/errors"
	"github.com/unbabel/tapi/client/internal/types"
)

const (
	// ProductionURL is the API root used when sandbox mode is off.
	ProductionURL = "https://unbabel.com/tapi/v2"
	// SandboxURL is the API root used when sandbox mode is on.
	SandboxURL = "https://sandbox.unbabel.com/tapi/v2"
)

// Verbs understood by Request. Matching is case-insensitive.
const (
	MethodGet   = "get"
	MethodPost  = "post"
	MethodPatch = "patch"
)

// Dispatcher owns credentials, the API root and the transport. Every endpoint
// goes through Request; it is the only place verbs are shaped.
type Dispatcher struct {
	transport types.Transport
	baseURL   string
	username  string
	apiKey    string
}

// NewDispatcher builds a Dispatcher. baseURL must not carry a trailing slash.
func NewDispatcher(t types.Transport, baseURL, username, apiKey string) *Dispatcher {
	return &Dispatcher{transport: t, baseURL: baseURL, username: username, apiKey: apiKey}
}

// BaseURL selects the API root for the environment.
func BaseURL(sandbox bool) string {
	if sandbox {
		return SandboxURL
	}
	return ProductionURL
}

// BuildRequestURL joins the API root and path verbatim.
func (d *Dispatcher) BuildRequestURL(path string) string {
	return d.baseURL + path
}

// AuthHeaders returns the headers sent with every request.
func (d *Dispatcher) AuthHeaders() map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("ApiKey %s:%s", d.username, d.apiKey),
		"Content-Type":  "application/json",
	}
}

// Request sends data to path using method. GET sends data as query
// parameters (nil or url.Values); POST and PATCH send it JSON-encoded, with
// json.RawMessage passed through as is. Unsupported verbs fail before the
// transport is touched.
func (d *Dispatcher) Request(ctx context.Context, path string, data any, method string) (*types.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	verb := strings.ToLower(method)
	endpoint := d.BuildRequestURL(path)

	var (
		resp *types.Response
		err  error
	)
	switch verb {
	case MethodGet:
		query, qerr := queryValues(data)
		if qerr != nil {
			return nil, qerr
		}
		log.Debug().Str("method", verb).Str("url", endpoint).Str("query", query.Encode()).Msg("dispatching request")
		resp, err = d.transport.Get(ctx, endpoint, d.AuthHeaders(), query)
	case MethodPost, MethodPatch:
		body, berr := encodeBody(data)
		if berr != nil {
			return nil, berr
		}
		log.Debug().Str("method", verb).Str("url", endpoint).Int("body_bytes", len(body)).Msg("dispatching request")
		if verb == MethodPost {
			resp, err = d.transport.Post(ctx, endpoint, d.AuthHeaders(), body)
		} else {
			resp, err = d.transport.Patch(ctx, endpoint, d.AuthHeaders(), body)
		}
	default:
		invalidArgumentsTotal.WithLabelValues("method").Inc()
		return nil, sdkerrors.NewArgumentError("method", method)
	}

	observe(verb, resp, err)
	return resp, err
}

func queryValues(data any) (url.Values, error) {
	switch v := data.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		if v == nil {
			return url.Values{}, nil
		}
		return v, nil
	default:
		return nil, fmt.Errorf("get: unsupported query type %T", data)
	}
}

func encodeBody(data any) ([]byte, error) {
	if raw, ok := data.(json.RawMessage); ok {
		return raw, nil
	}
	return types.EncodeJSON(data)
}
