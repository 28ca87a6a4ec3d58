// Package clientdoubles provides test doubles for resource.Client.
// These are hand-crafted implementations, no mock frameworks.
package clientdoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rios0rios0/hubgraph/resource"
	"github.com/rios0rios0/hubgraph/transport"
)

// Call records a single request received by the spy.
type Call struct {
	Method string
	Path   string
	Params url.Values
}

// SpyClient implements resource.Client as a configurable spy. Register canned
// YAML bodies with On; each registration is served once, in order, and the
// last one keeps being served. Unregistered requests get an empty 404.
type SpyClient struct {
	// --- identity ---
	LoginName string

	// --- canned responses ---
	responses map[string][]*transport.Response
	errs      map[string]error

	// spy: every request received, in order
	Calls []Call
	// spy: every debug message, formatted
	DebugLines []string
}

var _ resource.Client = (*SpyClient)(nil)

// NewSpyClient creates a spy authenticated as login.
func NewSpyClient(login string) *SpyClient {
	return &SpyClient{
		LoginName: login,
		responses: make(map[string][]*transport.Response),
		errs:      make(map[string]error),
	}
}

// On queues a response with the given status and YAML body for method+path.
func (c *SpyClient) On(method, path string, status int, body string) *SpyClient {
	key := method + " " + path
	c.responses[key] = append(c.responses[key], transport.NewResponse(status, []byte(body)))
	return c
}

// OnGet queues a 200 response for a GET of path.
func (c *SpyClient) OnGet(path, body string) *SpyClient {
	return c.On(http.MethodGet, path, http.StatusOK, body)
}

// Fail makes every request to method+path return err.
func (c *SpyClient) Fail(method, path string, err error) *SpyClient {
	c.errs[method+" "+path] = err
	return c
}

func (c *SpyClient) Login() string { return c.LoginName }

func (c *SpyClient) Debugf(format string, args ...any) {
	c.DebugLines = append(c.DebugLines, fmt.Sprintf(format, args...))
}

func (c *SpyClient) Get(_ context.Context, path string) (*transport.Response, error) {
	return c.serve(http.MethodGet, path, nil)
}

func (c *SpyClient) Post(_ context.Context, path string, params url.Values) (*transport.Response, error) {
	return c.serve(http.MethodPost, path, params)
}

func (c *SpyClient) serve(method, path string, params url.Values) (*transport.Response, error) {
	c.Calls = append(c.Calls, Call{Method: method, Path: path, Params: params})

	key := method + " " + path
	if err, ok := c.errs[key]; ok {
		return nil, err
	}
	queue := c.responses[key]
	switch len(queue) {
	case 0:
		return transport.NewResponse(http.StatusNotFound, nil), nil
	case 1:
		return queue[0], nil
	default:
		c.responses[key] = queue[1:]
		return queue[0], nil
	}
}

// CallCount returns how many requests were made, across all paths.
func (c *SpyClient) CallCount() int { return len(c.Calls) }

// CallsTo returns the requests made to method+path.
func (c *SpyClient) CallsTo(method, path string) []Call {
	var calls []Call
	for _, call := range c.Calls {
		if call.Method == method && call.Path == path {
			calls = append(calls, call)
		}
	}
	return calls
}

// Paths returns the method and path of every request, in order.
func (c *SpyClient) Paths() []string {
	paths := make([]string, 0, len(c.Calls))
	for _, call := range c.Calls {
		paths = append(paths, call.Method+" "+call.Path)
	}
	return paths
}
