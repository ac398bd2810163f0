package mock

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/unbabel/tapi/client"
	"github.com/unbabel/tapi/client/transport"
)

// fakeAPI is an in-memory stand-in for tapi/v2 that checks credentials and
// tracks job status, enough to drive the client end to end over real HTTP.
type fakeAPI struct {
	t        *testing.T
	username string
	apiKey   string
	router   *mux.Router

	mu       sync.Mutex
	seq      int
	jobs     map[string]map[string]any
	requests []string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()
	f := &fakeAPI{t: t, username: "fake_user", apiKey: "fake_key", jobs: map[string]map[string]any{}}

	r := mux.NewRouter()
	api := r.PathPrefix("/tapi/v2").Subrouter()
	api.HandleFunc("/translation/", f.createTranslation).Methods("POST")
	api.HandleFunc("/translation/", f.bulkTranslation).Methods("PATCH")
	api.HandleFunc("/translation/", f.listTranslations).Methods("GET")
	api.HandleFunc("/translation/{uid}/", f.getTranslation).Methods("GET")
	api.HandleFunc("/xliff_order/", f.createXliffOrder).Methods("POST")
	api.HandleFunc("/xliff_order/{uid}/", f.getXliffOrder).Methods("GET")
	api.HandleFunc("/language_pair/", f.languagePairs).Methods("GET")
	api.HandleFunc("/tone/", f.tones).Methods("GET")
	api.HandleFunc("/topic/", f.topics).Methods("GET")
	api.HandleFunc("/wordcount/", f.wordCount).Methods("POST")
	f.router = r

	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, srv
}

func newTestClient(srv *httptest.Server) *client.Client {
	cfg := client.Config{Username: "fake_user", APIKey: "fake_key", Sandbox: true}
	return client.New(cfg, transport.NewResty(), client.WithBaseURL(srv.URL+"/tapi/v2"))
}

// ServeHTTP records the request and checks the standard headers before
// routing. Handlers run with f.mu held.
func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, r.Method+" "+r.URL.RequestURI())
	w.Header().Set("Content-Type", "application/json")

	if r.Header.Get("Authorization") != fmt.Sprintf("ApiKey %s:%s", f.username, f.apiKey) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"unauthorized"}`)
		return
	}
	if r.Header.Get("Content-Type") != "application/json" {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}
	f.router.ServeHTTP(w, r)
}

func (f *fakeAPI) createTranslation(w http.ResponseWriter, r *http.Request) {
	var in map[string]any
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in["text"] == nil || in["target_language"] == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.writeJSON(w, http.StatusCreated, f.create(in))
}

func (f *fakeAPI) bulkTranslation(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Objects []map[string]any `json:"objects"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	out := make([]map[string]any, 0, len(in.Objects))
	for _, obj := range in.Objects {
		out = append(out, f.create(obj))
	}
	f.writeJSON(w, http.StatusAccepted, map[string]any{"objects": out})
}

func (f *fakeAPI) listTranslations(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	var out []map[string]any
	for _, job := range f.jobs {
		if job["status"] == status {
			out = append(out, job)
		}
	}
	f.writeJSON(w, http.StatusOK, map[string]any{"objects": out})
}

func (f *fakeAPI) getTranslation(w http.ResponseWriter, r *http.Request) {
	job, ok := f.jobs[mux.Vars(r)["uid"]]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"not found"}`)
		return
	}
	f.advance(job)
	f.writeJSON(w, http.StatusOK, job)
}

func (f *fakeAPI) createXliffOrder(w http.ResponseWriter, r *http.Request) {
	var in map[string]any
	_ = json.NewDecoder(r.Body).Decode(&in)
	f.writeJSON(w, http.StatusCreated, f.create(in))
}

func (f *fakeAPI) getXliffOrder(w http.ResponseWriter, r *http.Request) {
	if job, ok := f.jobs[mux.Vars(r)["uid"]]; ok {
		f.writeJSON(w, http.StatusOK, job)
		return
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *fakeAPI) languagePairs(w http.ResponseWriter, _ *http.Request) {
	f.writeJSON(w, http.StatusOK, map[string]any{"objects": []any{
		map[string]any{"lang_pair": map[string]any{"source_language": map[string]any{"shortname": "en"}, "target_language": map[string]any{"shortname": "pt"}}},
	}})
}

func (f *fakeAPI) tones(w http.ResponseWriter, _ *http.Request) {
	f.writeJSON(w, http.StatusOK, map[string]any{"objects": []any{map[string]any{"tone": map[string]any{"name": "Informal"}}}})
}

func (f *fakeAPI) topics(w http.ResponseWriter, _ *http.Request) {
	f.writeJSON(w, http.StatusOK, map[string]any{"objects": []any{map[string]any{"topic": map[string]any{"name": "politics"}}}})
}

func (f *fakeAPI) wordCount(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text string `json:"text"`
	}
	_ = json.NewDecoder(r.Body).Decode(&in)
	f.writeJSON(w, http.StatusOK, map[string]any{"word_count": len(strings.Fields(in.Text))})
}

func (f *fakeAPI) create(in map[string]any) map[string]any {
	f.seq++
	uid := fmt.Sprintf("uid%03d", f.seq)
	job := map[string]any{"uid": uid, "status": "new"}
	for k, v := range in {
		job[k] = v
	}
	f.jobs[uid] = job
	return job
}

// advance moves a job one step along new, translating, completed on every read.
func (f *fakeAPI) advance(job map[string]any) {
	switch job["status"] {
	case "new":
		job["status"] = "translating"
	case "translating":
		job["status"] = "completed"
		job["translatedText"] = "[" + fmt.Sprint(job["target_language"]) + "] " + fmt.Sprint(job["text"])
	}
}

func (f *fakeAPI) writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		f.t.Errorf("encode: %v", err)
	}
}

func (f *fakeAPI) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
