// Package metrics provides lock-free counters for interception activity.
//
// The Collector tracks how many requests were answered from overrides, how
// many real requests were recorded, override lookup hits and misses,
// processing errors, and cumulative processing time. All counters are plain
// atomics; there is no lock anywhere on the hot path.
//
// Snapshot() returns an internally consistent view with derived ratios.
// Because each counter is read independently, ratios may be slightly stale
// when counters race between reads. That is an accepted trade-off for
// lock-free monitoring; the collector is advisory, never authoritative.
//
// The counters have no consistency coupling to the repository: a response
// may land in the observed cache while its metrics update is still in
// flight, and vice versa.
//
// Handler() exposes the counters in the Prometheus text exposition format
// (text/plain; version=0.0.4) without any external dependency.
package metrics
