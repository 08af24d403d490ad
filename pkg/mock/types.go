package mock

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError represents a validation failure with context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

// Signature is the normalized identity of a request: method plus path.
// It is the key for both override and observed lookups.
//
// The zero value is not a valid signature; use NewSignature.
type Signature struct {
	method string
	path   string
}

// NewSignature builds a validated Signature.
// The method must be non-empty and consist solely of uppercase letters.
// The path must be non-empty and start with "/".
func NewSignature(method, path string) (Signature, error) {
	if method == "" {
		return Signature{}, &ValidationError{Field: "method", Message: "method is required"}
	}
	for _, c := range method {
		if c < 'A' || c > 'Z' {
			return Signature{}, &ValidationError{
				Field:   "method",
				Message: fmt.Sprintf("method must be uppercase letters only, got %q", method),
			}
		}
	}
	if path == "" {
		return Signature{}, &ValidationError{Field: "path", Message: "path is required"}
	}
	if !strings.HasPrefix(path, "/") {
		return Signature{}, &ValidationError{Field: "path", Message: "path must start with /"}
	}
	return Signature{method: method, path: path}, nil
}

// Method returns the request method.
func (s Signature) Method() string { return s.method }

// Path returns the request path.
func (s Signature) Path() string { return s.path }

// String formats the signature as "METHOD /path" for logs and diagnostics.
func (s Signature) String() string {
	return s.method + " " + s.path
}

// Descriptor describes an HTTP response: status code, body, an optional
// simulated delay, and optional headers. Descriptors are immutable; the
// header map is cloned on construction and on read.
type Descriptor struct {
	code    int
	body    string
	delayMs int
	headers map[string]string
}

// DescriptorOption configures optional Descriptor fields before validation.
type DescriptorOption func(*Descriptor)

// WithDelay sets the simulated response delay in milliseconds.
func WithDelay(ms int) DescriptorOption {
	return func(d *Descriptor) { d.delayMs = ms }
}

// WithHeaders sets the response headers. The map is copied.
func WithHeaders(headers map[string]string) DescriptorOption {
	return func(d *Descriptor) {
		d.headers = cloneHeaders(headers)
	}
}

// WithHeader adds a single response header.
func WithHeader(name, value string) DescriptorOption {
	return func(d *Descriptor) {
		if d.headers == nil {
			d.headers = make(map[string]string, 1)
		}
		d.headers[name] = value
	}
}

// NewDescriptor builds a validated Descriptor.
// The status code must lie in [100, 599] and the delay must be >= 0.
func NewDescriptor(code int, body string, opts ...DescriptorOption) (Descriptor, error) {
	d := Descriptor{code: code, body: body}
	for _, opt := range opts {
		opt(&d)
	}
	if d.code < 100 || d.code > 599 {
		return Descriptor{}, &ValidationError{
			Field:   "code",
			Message: fmt.Sprintf("status code must be between 100-599, got %d", d.code),
		}
	}
	if d.delayMs < 0 {
		return Descriptor{}, &ValidationError{
			Field:   "delay",
			Message: fmt.Sprintf("delay must be >= 0, got %d", d.delayMs),
		}
	}
	return d, nil
}

// Code returns the HTTP status code.
func (d Descriptor) Code() int { return d.code }

// Body returns the response body.
func (d Descriptor) Body() string { return d.body }

// DelayMs returns the simulated delay in milliseconds.
func (d Descriptor) DelayMs() int { return d.delayMs }

// Delay returns the simulated delay as a time.Duration.
func (d Descriptor) Delay() time.Duration {
	return time.Duration(d.delayMs) * time.Millisecond
}

// Headers returns a copy of the response headers.
// Mutating the returned map does not affect the descriptor.
func (d Descriptor) Headers() map[string]string {
	return cloneHeaders(d.headers)
}

// Header returns the value of a single header and whether it is set.
func (d Descriptor) Header(name string) (string, bool) {
	v, ok := d.headers[name]
	return v, ok
}

// IsSuccess reports whether the status code is in the 2xx range.
func (d Descriptor) IsSuccess() bool { return d.code >= 200 && d.code <= 299 }

// IsClientError reports whether the status code is in the 4xx range.
func (d Descriptor) IsClientError() bool { return d.code >= 400 && d.code <= 499 }

// IsServerError reports whether the status code is in the 5xx range.
func (d Descriptor) IsServerError() bool { return d.code >= 500 && d.code <= 599 }

// HasDelay reports whether a simulated delay is configured.
func (d Descriptor) HasDelay() bool { return d.delayMs > 0 }

// HasHeaders reports whether any headers are configured.
func (d Descriptor) HasHeaders() bool { return len(d.headers) > 0 }

func cloneHeaders(h map[string]string) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}
