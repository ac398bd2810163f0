package api

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/unbabel/tapi/client/internal/types"
)

// call is one request observed by recordingTransport.
type call struct {
	method  string
	url     string
	headers map[string]string
	query   url.Values
	body    []byte
}

// recordingTransport records every call and answers with a fixed response.
type recordingTransport struct {
	mu    sync.Mutex
	calls []call
	resp  *types.Response
	err   error
}

func newRecorder() *recordingTransport {
	return &recordingTransport{resp: &types.Response{StatusCode: 200, Body: []byte(`{}`)}}
}

func (r *recordingTransport) record(c call) (*types.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
	return r.resp, r.err
}

func (r *recordingTransport) Get(_ context.Context, u string, h map[string]string, q url.Values) (*types.Response, error) {
	return r.record(call{method: "GET", url: u, headers: h, query: q})
}

func (r *recordingTransport) Post(_ context.Context, u string, h map[string]string, b []byte) (*types.Response, error) {
	return r.record(call{method: "POST", url: u, headers: h, body: b})
}

func (r *recordingTransport) Patch(_ context.Context, u string, h map[string]string, b []byte) (*types.Response, error) {
	return r.record(call{method: "PATCH", url: u, headers: h, body: b})
}

func (r *recordingTransport) only() call {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) != 1 {
		panic(fmt.Sprintf("expected exactly one call, got %d", len(r.calls)))
	}
	return r.calls[0]
}

func (r *recordingTransport) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newTestDispatcher(t types.Transport) *Dispatcher {
	return NewDispatcher(t, SandboxURL, "fake_user", "fake_key")
}
