package repositories

import (
	"fmt"
	"io"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/hubgraph/internal/domain/entities"
	"github.com/rios0rios0/hubgraph/internal/domain/repositories"
	"github.com/rios0rios0/hubgraph/resource"
	"github.com/rios0rios0/hubgraph/transport"
)

// TransportGraphRepository opens graphs backed by a real HTTP transport.
type TransportGraphRepository struct {
	httpClient *http.Client
	// logOutput receives the transport's log lines. Nil means the
	// standard logger's output.
	logOutput io.Writer
}

var _ repositories.GraphRepository = (*TransportGraphRepository)(nil)

// NewTransportGraphRepository creates a repository whose transports write
// where the standard logrus logger writes.
func NewTransportGraphRepository() *TransportGraphRepository {
	return &TransportGraphRepository{}
}

// WithHTTPClient overrides the HTTP client every opened transport uses.
func (it *TransportGraphRepository) WithHTTPClient(client *http.Client) *TransportGraphRepository {
	it.httpClient = client
	return it
}

// WithLogOutput sends the transport's log lines to w.
func (it *TransportGraphRepository) WithLogOutput(w io.Writer) *TransportGraphRepository {
	it.logOutput = w
	return it
}

// Open builds a transport from the settings and returns a graph over it.
func (it *TransportGraphRepository) Open(settings *entities.Settings) (*resource.Graph, error) {
	cfg, err := settings.Config.TransportConfig()
	if err != nil {
		return nil, err
	}
	cfg.HTTPClient = it.httpClient
	cfg.Logger = it.transportLogger()

	tr, err := transport.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	logger.Debugf("Connected to %s as %s", tr.BaseURL(), tr.Login())
	return resource.NewGraph(tr), nil
}

// transportLogger accepts every level, since the transport's verbosity alone
// decides what it writes. The global level only applies to the CLI's own lines.
func (it *TransportGraphRepository) transportLogger() logger.FieldLogger {
	out := it.logOutput
	if out == nil {
		out = logger.StandardLogger().Out
	}
	log := logger.New()
	log.SetOutput(out)
	log.SetFormatter(logger.StandardLogger().Formatter)
	log.SetLevel(logger.DebugLevel)
	return log
}
