// Package store provides the shared repository for overrides and observed
// responses.
//
// The repository holds two independent mappings, both keyed by
// mock.Signature:
//
//   - overrides: descriptors configured by a developer, returned by the
//     engine in place of a real network call
//   - observed: the most recently captured real response per signature
//
// Clearing one mapping never affects the other. A signature may hold an
// override and an observed entry at the same time; the engine always prefers
// the override.
//
// One repository instance is constructed at process start and passed by
// reference to every engine. All Repository methods are safe for unbounded
// concurrent callers; each method is individually atomic, and readers never
// observe a partially written descriptor. Contents live in memory for the
// process lifetime; there is no TTL and no eviction beyond explicit clears.
package store
