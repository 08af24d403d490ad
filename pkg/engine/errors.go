package engine

import "fmt"

// Extraction operations reported in ExtractionError.Op.
const (
	OpExtractSignature  = "extract signature"
	OpExtractDescriptor = "extract descriptor"
	OpMaterialize       = "materialize response"
)

// ExtractionError reports that an adapter could not produce a well-formed
// signature, descriptor, or native response. It wraps the adapter's own
// error and is surfaced to the engine caller unmodified: the engine does not
// retry and does not partially apply.
type ExtractionError struct {
	// Adapter is the name of the adapter that failed.
	Adapter string

	// Op identifies the failed operation.
	Op string

	// Cause is the underlying adapter error.
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("adapter %s: %s: %v", e.Adapter, e.Op, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
