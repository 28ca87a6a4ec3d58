package resource

import (
	"context"
	"net/url"

	"github.com/rios0rios0/hubgraph/transport"
)

// Client is the part of *transport.Transport that entities depend on.
type Client interface {
	Get(ctx context.Context, path string) (*transport.Response, error)
	Post(ctx context.Context, path string, params url.Values) (*transport.Response, error)
	Login() string
	// Debugf writes a message only when the connection runs at debug verbosity.
	Debugf(format string, args ...any)
}

var _ Client = (*transport.Transport)(nil)
