package transport

import (
	"fmt"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed response body: a mapping of top-level envelope keys
// (user, users, repositories, commits, network, languages, tags, branches,
// collaborators, error) to their payloads.
type Document map[string]any

// Response is a received HTTP response with its parsed body.
type Response struct {
	StatusCode int
	Body       []byte
	Document   Document
	// ParseErr is set when the body could not be parsed as a mapping.
	ParseErr error
}

// NewResponse parses body into a Response.
func NewResponse(statusCode int, body []byte) *Response {
	resp := &Response{StatusCode: statusCode, Body: body}

	var raw map[string]any
	if err := yaml.Unmarshal(body, &raw); err != nil {
		resp.ParseErr = fmt.Errorf("failed to parse response body: %w", err)
		return resp
	}
	if raw != nil {
		resp.Document = Document(Normalize(raw).(map[string]any))
	}
	return resp
}

// Success reports whether the status is below 400.
func (r *Response) Success() bool {
	return r.StatusCode < http.StatusBadRequest
}

// Err returns an *APIError for non-success responses and nil otherwise.
func (r *Response) Err() error {
	if r.Success() {
		return nil
	}
	return &APIError{StatusCode: r.StatusCode, Messages: r.errorMessages()}
}

// Envelope returns the payload stored under the top-level key.
func (r *Response) Envelope(key string) (any, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	if r.ParseErr != nil {
		return nil, r.ParseErr
	}
	value, ok := r.Document[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing %q", ErrMalformedEnvelope, key)
	}
	return value, nil
}

// errorEntries returns the error collection, or nil when the body does not
// carry one in the expected shape.
func (r *Response) errorEntries() []any {
	entries, _ := r.Document["error"].([]any)
	return entries
}

func (r *Response) errorMessages() []string {
	var messages []string
	for _, entry := range r.errorEntries() {
		switch e := entry.(type) {
		case string:
			messages = append(messages, e)
		case map[string]any:
			if msg, ok := e["error"].(string); ok {
				messages = append(messages, msg)
			}
		}
	}
	return messages
}

// Normalize converts decoded YAML into string-keyed maps all the way down and
// strips the leading colon that symbol-keyed payloads carry (":name" -> "name").
func Normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[NormalizeKey(key)] = Normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[NormalizeKey(fmt.Sprint(key))] = Normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Normalize(item)
		}
		return out
	default:
		return value
	}
}

// NormalizeKey strips a single leading colon from an attribute name.
func NormalizeKey(key string) string {
	return strings.TrimPrefix(key, ":")
}
