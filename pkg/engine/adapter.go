package engine

import (
	"github.com/getmockd/intercept/pkg/mock"
)

// Adapter translates between one network client's native request/response
// objects and the shared Signature/Descriptor value types. Each supported
// client integration provides one implementation, selected at wiring time.
type Adapter[Req, Resp any] interface {
	// ExtractSignature derives the request signature from a native request.
	// It must be pure: no side effects on the native object.
	ExtractSignature(req Req) (mock.Signature, error)

	// ExtractDescriptor derives a response descriptor from a native
	// response. Implementations own the client library's body-consumption
	// protocol: the body must be drained exactly once and the native
	// response left in a state where its body is still readable by the
	// surrounding caller.
	ExtractDescriptor(resp Resp) (mock.Descriptor, error)

	// MaterializeResponse builds a client-native response reflecting the
	// descriptor's code, body, and headers, in the context of the request
	// that triggered it.
	MaterializeResponse(req Req, d mock.Descriptor) (Resp, error)

	// Supports reports whether this adapter can handle the given opaque
	// request/response pair. Used by callers juggling several engines to
	// pick the right one; either argument may be nil.
	Supports(req, resp any) bool

	// Name returns a stable identifier for diagnostics and metrics grouping.
	Name() string
}
