package mock

import (
	"errors"
	"testing"
)

// --- Signature ---

func TestNewSignature_Valid(t *testing.T) {
	sig, err := NewSignature("GET", "/users")
	if err != nil {
		t.Fatalf("NewSignature() error = %v", err)
	}
	if sig.Method() != "GET" {
		t.Errorf("Method() = %q, want %q", sig.Method(), "GET")
	}
	if sig.Path() != "/users" {
		t.Errorf("Path() = %q, want %q", sig.Path(), "/users")
	}
	if sig.String() != "GET /users" {
		t.Errorf("String() = %q, want %q", sig.String(), "GET /users")
	}
}

func TestNewSignature_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"empty method", "", "/users"},
		{"lowercase method", "get", "/users"},
		{"mixed case method", "Get", "/users"},
		{"method with digit", "GET2", "/users"},
		{"method with space", "GET ", "/users"},
		{"empty path", "GET", ""},
		{"relative path", "GET", "users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSignature(tt.method, tt.path)
			if err == nil {
				t.Fatalf("NewSignature(%q, %q) error = nil, want validation error", tt.method, tt.path)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error type = %T, want *ValidationError", err)
			}
		})
	}
}

func TestSignature_Equality(t *testing.T) {
	a, err := NewSignature("GET", "/users")
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewSignature("GET", "/users")
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewSignature("POST", "/users")
	if err != nil {
		t.Fatal(err)
	}

	if a != b {
		t.Error("identical signatures do not compare equal")
	}
	if a == c {
		t.Error("different signatures compare equal")
	}

	// Equal signatures must hash identically as map keys.
	m := map[Signature]int{}
	m[a] = 1
	m[b] = 2
	if len(m) != 1 {
		t.Errorf("map key count = %d, want 1 (equal signatures must collide)", len(m))
	}
	if m[a] != 2 {
		t.Errorf("map value = %d, want 2 (last write wins)", m[a])
	}
}

// --- Descriptor ---

func TestNewDescriptor_CodeBoundaries(t *testing.T) {
	tests := []struct {
		code    int
		wantErr bool
	}{
		{100, false},
		{200, false},
		{599, false},
		{99, true},
		{50, true},
		{600, true},
		{0, true},
		{-1, true},
	}

	for _, tt := range tests {
		_, err := NewDescriptor(tt.code, "")
		if (err != nil) != tt.wantErr {
			t.Errorf("NewDescriptor(%d) error = %v, wantErr %v", tt.code, err, tt.wantErr)
		}
	}
}

func TestNewDescriptor_Delay(t *testing.T) {
	if _, err := NewDescriptor(200, "", WithDelay(-1)); err == nil {
		t.Error("NewDescriptor with negative delay: error = nil, want validation error")
	}

	d, err := NewDescriptor(200, "", WithDelay(150))
	if err != nil {
		t.Fatalf("NewDescriptor() error = %v", err)
	}
	if d.DelayMs() != 150 {
		t.Errorf("DelayMs() = %d, want 150", d.DelayMs())
	}
	if d.Delay().Milliseconds() != 150 {
		t.Errorf("Delay() = %v, want 150ms", d.Delay())
	}
	if !d.HasDelay() {
		t.Error("HasDelay() = false, want true")
	}
}

func TestDescriptor_Defaults(t *testing.T) {
	d, err := NewDescriptor(204, "")
	if err != nil {
		t.Fatalf("NewDescriptor() error = %v", err)
	}
	if d.DelayMs() != 0 {
		t.Errorf("DelayMs() = %d, want 0", d.DelayMs())
	}
	if d.HasDelay() {
		t.Error("HasDelay() = true, want false")
	}
	if d.HasHeaders() {
		t.Error("HasHeaders() = true, want false")
	}
	if d.Body() != "" {
		t.Errorf("Body() = %q, want empty", d.Body())
	}
}

func TestDescriptor_Predicates(t *testing.T) {
	tests := []struct {
		code        int
		success     bool
		clientError bool
		serverError bool
	}{
		{200, true, false, false},
		{299, true, false, false},
		{301, false, false, false},
		{404, false, true, false},
		{500, false, false, true},
		{599, false, false, true},
	}

	for _, tt := range tests {
		d, err := NewDescriptor(tt.code, "")
		if err != nil {
			t.Fatalf("NewDescriptor(%d) error = %v", tt.code, err)
		}
		if d.IsSuccess() != tt.success {
			t.Errorf("IsSuccess() for %d = %v, want %v", tt.code, d.IsSuccess(), tt.success)
		}
		if d.IsClientError() != tt.clientError {
			t.Errorf("IsClientError() for %d = %v, want %v", tt.code, d.IsClientError(), tt.clientError)
		}
		if d.IsServerError() != tt.serverError {
			t.Errorf("IsServerError() for %d = %v, want %v", tt.code, d.IsServerError(), tt.serverError)
		}
	}
}

func TestDescriptor_HeadersAreCopied(t *testing.T) {
	src := map[string]string{"Content-Type": "application/json"}
	d, err := NewDescriptor(200, "{}", WithHeaders(src))
	if err != nil {
		t.Fatalf("NewDescriptor() error = %v", err)
	}

	// Mutating the source map must not leak into the descriptor.
	src["Content-Type"] = "text/plain"
	if v, _ := d.Header("Content-Type"); v != "application/json" {
		t.Errorf("Header() = %q after source mutation, want %q", v, "application/json")
	}

	// Mutating the returned map must not leak either.
	out := d.Headers()
	out["Content-Type"] = "text/html"
	if v, _ := d.Header("Content-Type"); v != "application/json" {
		t.Errorf("Header() = %q after snapshot mutation, want %q", v, "application/json")
	}
}

func TestDescriptor_WithHeader(t *testing.T) {
	d, err := NewDescriptor(201, "created",
		WithHeader("Content-Type", "text/plain"),
		WithHeader("X-Request-ID", "abc"),
	)
	if err != nil {
		t.Fatalf("NewDescriptor() error = %v", err)
	}
	if !d.HasHeaders() {
		t.Fatal("HasHeaders() = false, want true")
	}
	if len(d.Headers()) != 2 {
		t.Errorf("len(Headers()) = %d, want 2", len(d.Headers()))
	}
	if _, ok := d.Header("X-Missing"); ok {
		t.Error("Header() for missing name reported ok = true")
	}
}
