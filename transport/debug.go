package transport

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport logs every request/response pair for troubleshooting.
//
// When to use:
//   - Set UNBABEL_DEBUG=true or DEBUG=true, or pass WithDebugLogging(true)
//   - When a request is rejected and the status code alone does not explain why
//
// Security considerations:
//   - Dumps include the Authorization header, i.e. the API key
//   - Only enable in development environments
//
// Each pair shares a request_id log field so interleaved concurrent calls can
// be told apart. The id is never sent to the API.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether UNBABEL_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("UNBABEL_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
