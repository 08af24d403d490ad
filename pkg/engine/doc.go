// Package engine provides the client-agnostic interception engine.
//
// # Architecture
//
// The engine sits between a network client and the shared repository. It is
// generic over the client's native request and response representations and
// touches them only through one Adapter:
//
//	client request ──▶ Engine.TryMock ──▶ Adapter.ExtractSignature
//	                        │                     │
//	                        │              store.Repository (overrides)
//	                        │                     │
//	                        ├── hit ──▶ delay ──▶ Adapter.MaterializeResponse
//	                        └── miss ─▶ real call proceeds
//
//	real response ──▶ Engine.RecordResponse ──▶ Adapter.ExtractDescriptor
//	                                                  │
//	                                     store.Repository (observed cache)
//
// Several engine instances, one per network client, share a single
// repository passed by reference at construction; the repository is never a
// package-level global and never recreated per request.
//
// # Failure semantics
//
// Any adapter failure surfaces to the caller as an *ExtractionError. The
// engine never retries, never falls back to the real request on its own, and
// never leaves a half-recorded cache entry. Every error increments the
// processing-error counter before propagating; suppression, if any, is the
// surrounding integration's decision.
package engine
