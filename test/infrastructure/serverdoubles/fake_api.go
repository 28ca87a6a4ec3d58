// Package serverdoubles provides an in-process HTTP server speaking the
// YAML API, for tests that exercise the real transport end to end.
package serverdoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// APIRoot is the path prefix every route is mounted under.
const APIRoot = "/api/v2/yaml"

// Request records one request received by the fake.
type Request struct {
	Method string
	Path   string
	Query  url.Values
}

// FakeAPI routes canned YAML bodies by method and path. Unrouted requests
// get a 404 with an API-shaped error body.
type FakeAPI struct {
	server *httptest.Server
	router *mux.Router

	mu       sync.Mutex
	requests []Request
}

// NewFakeAPI starts a fake that is closed when the test ends.
func NewFakeAPI(t testing.TB) *FakeAPI {
	t.Helper()

	f := &FakeAPI{router: mux.NewRouter()}
	f.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("error:\n- error: not found\n"))
	})
	f.server = httptest.NewServer(http.HandlerFunc(f.serveHTTP))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeAPI) serveHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, Request{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()})
	f.mu.Unlock()
	f.router.ServeHTTP(w, r)
}

// Handle serves body with status for method on path (relative to APIRoot).
// A query in path must be matched too, so "?page=2" routes a single page.
func (f *FakeAPI) Handle(method, path string, status int, body string) *FakeAPI {
	route, rawQuery, _ := strings.Cut(path, "?")
	r := f.router.HandleFunc(APIRoot+route, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/x-yaml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}).Methods(method)

	if query, err := url.ParseQuery(rawQuery); err == nil {
		for key := range query {
			r.Queries(key, query.Get(key))
		}
	}
	return f
}

// HandleGet serves body with a 200 for GET on path.
func (f *FakeAPI) HandleGet(path, body string) *FakeAPI {
	return f.Handle(http.MethodGet, path, http.StatusOK, body)
}

// BaseURL is the value to configure as the transport base URL.
func (f *FakeAPI) BaseURL() string {
	return f.server.URL + APIRoot
}

// Client returns an HTTP client wired to the fake.
func (f *FakeAPI) Client() *http.Client {
	return f.server.Client()
}

// Requests returns every request received so far, in order.
func (f *FakeAPI) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Request(nil), f.requests...)
}

// Paths returns "METHOD path" for every request, with APIRoot stripped.
func (f *FakeAPI) Paths() []string {
	requests := f.Requests()
	paths := make([]string, 0, len(requests))
	for _, r := range requests {
		paths = append(paths, r.Method+" "+strings.TrimPrefix(r.Path, APIRoot))
	}
	return paths
}
