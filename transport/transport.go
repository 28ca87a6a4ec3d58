package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
)

const (
	// APIVersion is the version segment of every request path.
	APIVersion = "v2"
	// Format is the serialization segment of every request path.
	Format = "yaml"

	// DefaultBaseURL is host + API root + version + format. Resource paths are appended to it.
	DefaultBaseURL = "http://github.com/api/" + APIVersion + "/" + Format

	defaultTimeout = 30 * time.Second
)

// Config holds everything needed to build a Transport.
type Config struct {
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string

	// Credentials supplies the login/token pair injected in every request.
	Credentials CredentialProvider

	// HTTPClient defaults to a client with a 30s timeout.
	HTTPClient *http.Client

	// Retry defaults to DefaultRetryPolicy (unbounded).
	Retry *RetryPolicy

	// Clock is used for backoff waits. Defaults to RealClock().
	Clock Clock

	Verbosity Verbosity

	// Logger receives the verbosity-gated output. Defaults to a logger on stderr.
	Logger logger.FieldLogger
}

// Transport performs authenticated GET/POST calls against the API and retries
// rate-limited responses. It is safe to share between any number of entities,
// but it issues one request at a time and blocks during backoff.
type Transport struct {
	baseURL     string
	credentials Credentials
	httpClient  *http.Client
	retry       RetryPolicy
	clock       Clock
	verbosity   Verbosity
	log         logger.FieldLogger
}

// New creates a Transport from the given configuration, resolving credentials once.
func New(cfg Config) (*Transport, error) {
	if cfg.Credentials == nil {
		return nil, ErrNoCredentials
	}
	creds, err := cfg.Credentials.Credentials()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve credentials: %w", err)
	}
	if creds.Login == "" {
		return nil, ErrNoCredentials
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	retry := DefaultRetryPolicy()
	if cfg.Retry != nil {
		retry = *cfg.Retry
	}

	clk := cfg.Clock
	if clk == nil {
		clk = RealClock()
	}

	log := cfg.Logger
	if log == nil {
		log = newDefaultLogger()
	}

	t := &Transport{
		baseURL:     baseURL,
		credentials: creds,
		httpClient:  httpClient,
		retry:       retry,
		clock:       clk,
		verbosity:   cfg.Verbosity,
		log:         log,
	}
	t.debugf("Login using login %s", creds.Login)
	return t, nil
}

// Connect is a shortcut for New with a static login/token pair.
func Connect(login, token string, verbosity Verbosity) (*Transport, error) {
	return New(Config{
		Credentials: Credentials{Login: login, Token: token},
		Verbosity:   verbosity,
	})
}

func newDefaultLogger() logger.FieldLogger {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	return &logger.Logger{
		Out:       os.Stderr,
		Formatter: &logger.TextFormatter{DisableTimestamp: true},
		Hooks:     logger.LevelHooks{},
		Level:     logger.DebugLevel,
	}
}

// Login returns the login the transport authenticates as.
func (t *Transport) Login() string {
	return t.credentials.Login
}

// Verbosity returns the configured verbosity level.
func (t *Transport) Verbosity() Verbosity {
	return t.verbosity
}

// BaseURL returns the URL every resource path is appended to.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Get performs a GET request on path, retrying while rate limited.
func (t *Transport) Get(ctx context.Context, path string) (*Response, error) {
	return t.withRetry(ctx, func() (*Response, error) {
		return t.do(ctx, http.MethodGet, path, nil)
	})
}

// Post performs a POST request on path with params merged into the query,
// retrying while rate limited.
func (t *Transport) Post(ctx context.Context, path string, params url.Values) (*Response, error) {
	return t.withRetry(ctx, func() (*Response, error) {
		return t.do(ctx, http.MethodPost, path, params)
	})
}

// requestURL concatenates the base URL and path, then merges the path's own
// query, the credentials and params into a single query string.
func (t *Transport) requestURL(path string, params url.Values) (string, error) {
	target, err := url.Parse(t.baseURL + path)
	if err != nil {
		return "", fmt.Errorf("failed to build request URL for %q: %w", path, err)
	}

	query := target.Query()
	query.Set("login", t.credentials.Login)
	query.Set("token", t.credentials.Token)
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	target.RawQuery = query.Encode()

	return target.String(), nil
}

func (t *Transport) do(ctx context.Context, method, path string, params url.Values) (*Response, error) {
	target, err := t.requestURL(path, params)
	if err != nil {
		return nil, err
	}

	t.debugf("%s %s%s", method, t.baseURL, path)
	if len(params) > 0 {
		t.debugf("params: %v", params)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/x-yaml, text/yaml")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, redact(err, t.credentials.Token))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	t.debugf("%d", resp.StatusCode)
	t.debugf("%s", body)

	return NewResponse(resp.StatusCode, body), nil
}

// redact strips the token from URL errors so it never ends up in logs.
func redact(err error, token string) error {
	var urlErr *url.Error
	if token == "" || !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, token, "REDACTED"),
		Err: urlErr.Err,
	}
}

// Debugf logs format at debug verbosity. Below that level it does nothing.
func (t *Transport) Debugf(format string, args ...any) {
	t.debugf(format, args...)
}

func (t *Transport) debugf(format string, args ...interface{}) {
	if t.verbosity >= VerbosityDebug {
		t.log.Debugf(format, args...)
	}
}

func (t *Transport) warnf(format string, args ...interface{}) {
	if t.verbosity >= VerbosityWarning {
		t.log.Warnf(format, args...)
	}
}
