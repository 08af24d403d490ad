package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/getmockd/intercept/pkg/logging"
	"github.com/getmockd/intercept/pkg/metrics"
	"github.com/getmockd/intercept/pkg/mock"
	"github.com/getmockd/intercept/pkg/store"
)

// Engine orchestrates interception for one network client. It is generic
// over the client's request and response representations and parameterized
// by one Adapter. All methods are safe for concurrent use.
type Engine[Req, Resp any] struct {
	id        string
	repo      store.Repository
	adapter   Adapter[Req, Resp]
	collector *metrics.Collector
	logger    *slog.Logger
}

// Option configures an Engine.
type Option[Req, Resp any] func(*Engine[Req, Resp])

// WithCollector attaches a metrics collector. Without one, the engine keeps
// no counters.
func WithCollector[Req, Resp any](c *metrics.Collector) Option[Req, Resp] {
	return func(e *Engine[Req, Resp]) { e.collector = c }
}

// WithLogger attaches a logger for debug-level interception events.
func WithLogger[Req, Resp any](l *slog.Logger) Option[Req, Resp] {
	return func(e *Engine[Req, Resp]) { e.logger = l }
}

// New creates an Engine bound to a shared repository and one adapter.
// The repository is typically shared across several engine instances.
func New[Req, Resp any](repo store.Repository, adapter Adapter[Req, Resp], opts ...Option[Req, Resp]) *Engine[Req, Resp] {
	e := &Engine[Req, Resp]{
		id:      uuid.NewString(),
		repo:    repo,
		adapter: adapter,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.Nop()
	}
	return e
}

// ID returns this engine instance's unique identifier.
func (e *Engine[Req, Resp]) ID() string { return e.id }

// Name returns the adapter's stable name.
func (e *Engine[Req, Resp]) Name() string { return e.adapter.Name() }

// TryMock looks up an override for the request. On a hit it applies the
// configured delay exactly once (cancellable through ctx, with no repository
// lock held while sleeping), then asks the adapter to materialize a native
// response. A miss returns ok=false with no error; the real call must
// proceed.
func (e *Engine[Req, Resp]) TryMock(ctx context.Context, req Req) (Resp, bool, error) {
	var zero Resp
	start := time.Now()

	sig, err := e.adapter.ExtractSignature(req)
	if err != nil {
		e.markError()
		return zero, false, &ExtractionError{Adapter: e.adapter.Name(), Op: OpExtractSignature, Cause: err}
	}

	d, ok := e.repo.GetOverride(sig)
	if !ok {
		e.markMiss()
		e.logger.Debug("no override", "adapter", e.adapter.Name(), "signature", sig.String())
		return zero, false, nil
	}
	e.markHit()

	if d.HasDelay() {
		timer := time.NewTimer(d.Delay())
		select {
		case <-ctx.Done():
			timer.Stop()
			e.markError()
			return zero, false, ctx.Err()
		case <-timer.C:
		}
	}

	resp, err := e.adapter.MaterializeResponse(req, d)
	if err != nil {
		e.markError()
		return zero, false, &ExtractionError{Adapter: e.adapter.Name(), Op: OpMaterialize, Cause: err}
	}

	e.markOverrideServed(time.Since(start))
	e.logger.Debug("override served",
		"adapter", e.adapter.Name(), "signature", sig.String(),
		"code", d.Code(), "delay_ms", d.DelayMs())
	return resp, true, nil
}

// TryMockSync is TryMock without the delay step, for call sites that cannot
// suspend. The configured delay is not applied; callers that want it can
// read it through OverrideFor and apply it themselves.
func (e *Engine[Req, Resp]) TryMockSync(req Req) (Resp, bool, error) {
	var zero Resp
	start := time.Now()

	sig, err := e.adapter.ExtractSignature(req)
	if err != nil {
		e.markError()
		return zero, false, &ExtractionError{Adapter: e.adapter.Name(), Op: OpExtractSignature, Cause: err}
	}

	d, ok := e.repo.GetOverride(sig)
	if !ok {
		e.markMiss()
		return zero, false, nil
	}
	e.markHit()

	resp, err := e.adapter.MaterializeResponse(req, d)
	if err != nil {
		e.markError()
		return zero, false, &ExtractionError{Adapter: e.adapter.Name(), Op: OpMaterialize, Cause: err}
	}

	e.markOverrideServed(time.Since(start))
	return resp, true, nil
}

// OverrideFor returns the override descriptor matching the request, if any.
// It is a read-only peek: hit/miss counters are not touched, so it can be
// combined with TryMockSync without double counting.
func (e *Engine[Req, Resp]) OverrideFor(req Req) (mock.Descriptor, bool, error) {
	sig, err := e.adapter.ExtractSignature(req)
	if err != nil {
		e.markError()
		return mock.Descriptor{}, false, &ExtractionError{Adapter: e.adapter.Name(), Op: OpExtractSignature, Cause: err}
	}
	d, ok := e.repo.GetOverride(sig)
	return d, ok, nil
}

// RecordResponse captures a real response into the observed cache,
// unconditionally replacing any prior entry for the same signature. Content
// such as an empty body is not an error; only a structurally invalid
// extraction fails, in which case nothing is written.
func (e *Engine[Req, Resp]) RecordResponse(req Req, resp Resp) error {
	start := time.Now()

	sig, err := e.adapter.ExtractSignature(req)
	if err != nil {
		e.markError()
		return &ExtractionError{Adapter: e.adapter.Name(), Op: OpExtractSignature, Cause: err}
	}

	d, err := e.adapter.ExtractDescriptor(resp)
	if err != nil {
		e.markError()
		return &ExtractionError{Adapter: e.adapter.Name(), Op: OpExtractDescriptor, Cause: err}
	}

	e.repo.CacheObserved(sig, d)
	e.markRealRequest(time.Since(start))
	e.logger.Debug("response recorded",
		"adapter", e.adapter.Name(), "signature", sig.String(), "code", d.Code())
	return nil
}

// CanHandle reports whether this engine's adapter supports the given opaque
// request/response pair. Callers holding several engines use it to dispatch.
func (e *Engine[Req, Resp]) CanHandle(req, resp any) bool {
	return e.adapter.Supports(req, resp)
}

func (e *Engine[Req, Resp]) markHit() {
	if e.collector != nil {
		e.collector.CacheHit()
	}
}

func (e *Engine[Req, Resp]) markMiss() {
	if e.collector != nil {
		e.collector.CacheMiss()
	}
}

func (e *Engine[Req, Resp]) markError() {
	if e.collector != nil {
		e.collector.ProcessingError()
	}
}

func (e *Engine[Req, Resp]) markOverrideServed(elapsed time.Duration) {
	if e.collector != nil {
		e.collector.OverrideServed()
		e.collector.ObserveProcessingTime(elapsed)
	}
}

func (e *Engine[Req, Resp]) markRealRequest(elapsed time.Duration) {
	if e.collector != nil {
		e.collector.RealRequest()
		e.collector.ObserveProcessingTime(elapsed)
	}
}
