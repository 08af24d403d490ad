// Package nethttp is the reference adapter for Go's standard HTTP client.
//
// Adapter translates *http.Request and *http.Response to and from the
// shared Signature/Descriptor types. Transport wraps an http.RoundTripper
// so an http.Client serves configured overrides without touching the
// network and records real responses into the shared repository:
//
//	repo := store.NewInMemoryRepository()
//	client := &http.Client{Transport: nethttp.NewTransport(repo)}
package nethttp
