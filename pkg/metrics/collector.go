package metrics

import (
	"sync/atomic"
	"time"
)

// Collector holds the interception counters. All methods are safe for
// concurrent use and never block. The zero value is ready to use.
type Collector struct {
	overridesServed  atomic.Uint64
	realRequests     atomic.Uint64
	cacheHits        atomic.Uint64
	cacheMisses      atomic.Uint64
	processingErrors atomic.Uint64
	processingTimeNs atomic.Int64
}

// NewCollector creates a Collector with all counters at zero.
func NewCollector() *Collector {
	return &Collector{}
}

// OverrideServed records a request answered from an override.
func (c *Collector) OverrideServed() {
	c.overridesServed.Add(1)
}

// RealRequest records a real response observed and recorded.
func (c *Collector) RealRequest() {
	c.realRequests.Add(1)
}

// CacheHit records an override lookup that found an entry.
func (c *Collector) CacheHit() {
	c.cacheHits.Add(1)
}

// CacheMiss records an override lookup that found nothing.
func (c *Collector) CacheMiss() {
	c.cacheMisses.Add(1)
}

// ProcessingError records a failure during interception or recording.
func (c *Collector) ProcessingError() {
	c.processingErrors.Add(1)
}

// ObserveProcessingTime adds a processing duration to the cumulative total.
func (c *Collector) ObserveProcessingTime(d time.Duration) {
	c.processingTimeNs.Add(int64(d))
}

// Reset zeroes all counters. Intended for test isolation only.
func (c *Collector) Reset() {
	c.overridesServed.Store(0)
	c.realRequests.Store(0)
	c.cacheHits.Store(0)
	c.cacheMisses.Store(0)
	c.processingErrors.Store(0)
	c.processingTimeNs.Store(0)
}

// Snapshot is an immutable view of the counters with derived ratios.
type Snapshot struct {
	OverridesServed  uint64
	RealRequests     uint64
	CacheHits        uint64
	CacheMisses      uint64
	ProcessingErrors uint64
	ProcessingTime   time.Duration

	// OverrideRatio is overrides served / (overrides served + real requests).
	OverrideRatio float64

	// HitRatio is cache hits / (cache hits + cache misses).
	HitRatio float64

	// AvgProcessingTime is cumulative processing time / total requests,
	// where total requests = overrides served + real requests.
	AvgProcessingTime time.Duration
}

// TotalRequests returns overrides served plus real requests.
func (s Snapshot) TotalRequests() uint64 {
	return s.OverridesServed + s.RealRequests
}

// Snapshot reads each counter once and computes the derived ratios.
// Ratios are approximate when counters race between the reads.
func (c *Collector) Snapshot() Snapshot {
	s := Snapshot{
		OverridesServed:  c.overridesServed.Load(),
		RealRequests:     c.realRequests.Load(),
		CacheHits:        c.cacheHits.Load(),
		CacheMisses:      c.cacheMisses.Load(),
		ProcessingErrors: c.processingErrors.Load(),
		ProcessingTime:   time.Duration(c.processingTimeNs.Load()),
	}

	if total := s.OverridesServed + s.RealRequests; total > 0 {
		s.OverrideRatio = float64(s.OverridesServed) / float64(total)
		s.AvgProcessingTime = s.ProcessingTime / time.Duration(total)
	}
	if lookups := s.CacheHits + s.CacheMisses; lookups > 0 {
		s.HitRatio = float64(s.CacheHits) / float64(lookups)
	}

	return s
}
