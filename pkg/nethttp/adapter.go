package nethttp

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/getmockd/intercept/pkg/mock"
)

// AdapterName identifies this adapter in diagnostics and errors.
const AdapterName = "net/http"

// Adapter translates between net/http request/response objects and the
// Signature/Descriptor value types. It is stateless and safe for concurrent
// use.
type Adapter struct{}

// NewAdapter returns the net/http adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// ExtractSignature derives a signature from the request method and URL path.
// An empty method is treated as GET and an empty path as "/", matching
// net/http's own defaulting.
func (a *Adapter) ExtractSignature(req *http.Request) (mock.Signature, error) {
	if req == nil {
		return mock.Signature{}, fmt.Errorf("nil request")
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	path := "/"
	if req.URL != nil && req.URL.Path != "" {
		path = req.URL.Path
	}
	return mock.NewSignature(method, path)
}

// ExtractDescriptor drains the response body exactly once and replaces it
// with an in-memory reader, so the surrounding caller can still read it.
// Single-valued headers are captured; for multi-valued headers the first
// value wins.
func (a *Adapter) ExtractDescriptor(resp *http.Response) (mock.Descriptor, error) {
	if resp == nil {
		return mock.Descriptor{}, fmt.Errorf("nil response")
	}

	var body []byte
	if resp.Body != nil {
		var err error
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return mock.Descriptor{}, fmt.Errorf("read response body: %w", err)
		}
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}

	var opts []mock.DescriptorOption
	if len(resp.Header) > 0 {
		headers := make(map[string]string, len(resp.Header))
		for name, values := range resp.Header {
			if len(values) > 0 {
				headers[name] = values[0]
			}
		}
		opts = append(opts, mock.WithHeaders(headers))
	}

	return mock.NewDescriptor(resp.StatusCode, string(body), opts...)
}

// MaterializeResponse builds an *http.Response from a descriptor, attached
// to the request that triggered it.
func (a *Adapter) MaterializeResponse(req *http.Request, d mock.Descriptor) (*http.Response, error) {
	header := make(http.Header)
	for name, value := range d.Headers() {
		header.Set(name, value)
	}

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", d.Code(), http.StatusText(d.Code())),
		StatusCode:    d.Code(),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(strings.NewReader(d.Body())),
		ContentLength: int64(len(d.Body())),
		Request:       req,
	}, nil
}

// Supports reports whether the pair looks like net/http objects.
// Either argument may be nil, but not both.
func (a *Adapter) Supports(req, resp any) bool {
	if req == nil && resp == nil {
		return false
	}
	if req != nil {
		if _, ok := req.(*http.Request); !ok {
			return false
		}
	}
	if resp != nil {
		if _, ok := resp.(*http.Response); !ok {
			return false
		}
	}
	return true
}

// Name returns the adapter identifier.
func (a *Adapter) Name() string { return AdapterName }
