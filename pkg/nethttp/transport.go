package nethttp

import (
	"log/slog"
	"net/http"

	"github.com/getmockd/intercept/pkg/config"
	"github.com/getmockd/intercept/pkg/engine"
	"github.com/getmockd/intercept/pkg/logging"
	"github.com/getmockd/intercept/pkg/metrics"
	"github.com/getmockd/intercept/pkg/store"
)

// Transport is an http.RoundTripper that serves overrides from a shared
// repository and records real responses into it. Install it as an
// http.Client's Transport to intercept that client's calls.
type Transport struct {
	engine             *engine.Engine[*http.Request, *http.Response]
	base               http.RoundTripper
	enabled            bool
	record             bool
	passthroughOnError bool
	collector          *metrics.Collector
	logger             *slog.Logger
}

// TransportOption configures a Transport.
type TransportOption func(*Transport)

// WithBase sets the underlying RoundTripper for real requests.
// Defaults to http.DefaultTransport.
func WithBase(rt http.RoundTripper) TransportOption {
	return func(t *Transport) { t.base = rt }
}

// WithRecording toggles capturing real responses into the observed cache.
func WithRecording(record bool) TransportOption {
	return func(t *Transport) { t.record = record }
}

// WithPassthroughOnError lets the real request proceed when interception
// fails, instead of surfacing the error to the HTTP caller.
func WithPassthroughOnError(passthrough bool) TransportOption {
	return func(t *Transport) { t.passthroughOnError = passthrough }
}

// WithLogger attaches a logger for interception events.
func WithLogger(l *slog.Logger) TransportOption {
	return func(t *Transport) { t.logger = l }
}

// WithCollector attaches a metrics collector to the underlying engine.
func WithCollector(c *metrics.Collector) TransportOption {
	return func(t *Transport) { t.collector = c }
}

// WithConfig applies an environment-driven configuration in one step.
// The logger is built from the config's level and format unless WithLogger
// is also given.
func WithConfig(cfg config.Config) TransportOption {
	return func(t *Transport) {
		t.enabled = cfg.Enabled
		t.record = cfg.Record
		t.passthroughOnError = cfg.PassthroughOnError
		if t.logger == nil {
			t.logger = logging.New(logging.Config{
				Level:  logging.ParseLevel(cfg.LogLevel),
				Format: logging.ParseFormat(cfg.LogFormat),
			})
		}
	}
}

// NewTransport creates a Transport bound to a shared repository.
// Interception and recording are enabled by default.
func NewTransport(repo store.Repository, opts ...TransportOption) *Transport {
	t := &Transport{
		base:    http.DefaultTransport,
		enabled: true,
		record:  true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logging.Nop()
	}

	engineOpts := []engine.Option[*http.Request, *http.Response]{
		engine.WithLogger[*http.Request, *http.Response](t.logger),
	}
	if t.collector != nil {
		engineOpts = append(engineOpts,
			engine.WithCollector[*http.Request, *http.Response](t.collector))
	}
	t.engine = engine.New(repo, engine.Adapter[*http.Request, *http.Response](NewAdapter()), engineOpts...)

	return t
}

// Engine returns the underlying engine, for callers that dispatch across
// several engine instances.
func (t *Transport) Engine() *engine.Engine[*http.Request, *http.Response] {
	return t.engine
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.enabled {
		return t.base.RoundTrip(req)
	}

	resp, ok, err := t.engine.TryMock(req.Context(), req)
	if err != nil {
		if !t.passthroughOnError {
			return nil, err
		}
		t.logger.Warn("interception failed, passing through", "error", err)
	} else if ok {
		return resp, nil
	}

	real, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if t.record {
		// Recording failures must not break the caller's request; the
		// response itself is untouched because the adapter leaves the body
		// replay-safe.
		if rerr := t.engine.RecordResponse(req, real); rerr != nil {
			t.logger.Warn("failed to record response", "error", rerr)
		}
	}

	return real, nil
}
