package metrics

import (
	"fmt"
	"math"
	"net/http"
	"strings"
)

// Handler returns an http.Handler that serves the collector's counters in
// Prometheus text exposition format.
func (c *Collector) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s := c.Snapshot()

		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

		writeCounter(w, "intercept_overrides_served_total",
			"Requests answered from a configured override.", float64(s.OverridesServed))
		writeCounter(w, "intercept_real_requests_total",
			"Real responses observed and recorded.", float64(s.RealRequests))
		writeCounter(w, "intercept_cache_hits_total",
			"Override lookups that found an entry.", float64(s.CacheHits))
		writeCounter(w, "intercept_cache_misses_total",
			"Override lookups that found nothing.", float64(s.CacheMisses))
		writeCounter(w, "intercept_processing_errors_total",
			"Failures during interception or recording.", float64(s.ProcessingErrors))
		writeCounter(w, "intercept_processing_seconds_total",
			"Cumulative processing time.", s.ProcessingTime.Seconds())

		writeGauge(w, "intercept_override_ratio",
			"Share of requests answered from overrides.", s.OverrideRatio)
		writeGauge(w, "intercept_hit_ratio",
			"Share of override lookups that hit.", s.HitRatio)
	})
}

func writeCounter(w http.ResponseWriter, name, help string, value float64) {
	writeSample(w, name, help, "counter", value)
}

func writeGauge(w http.ResponseWriter, name, help string, value float64) {
	writeSample(w, name, help, "gauge", value)
}

func writeSample(w http.ResponseWriter, name, help, typ string, value float64) {
	_, _ = fmt.Fprintf(w, "# HELP %s %s\n", name, escapeHelp(help))
	_, _ = fmt.Fprintf(w, "# TYPE %s %s\n", name, typ)
	_, _ = fmt.Fprintf(w, "%s %s\n", name, formatFloat(value))
}

// formatFloat formats a float64 for Prometheus output.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	s := fmt.Sprintf("%g", v)
	// Prometheus prefers explicit format for whole numbers
	if v == float64(int64(v)) && !strings.Contains(s, ".") && !strings.Contains(s, "e") {
		return fmt.Sprintf("%.0f", v)
	}
	return s
}

func escapeHelp(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return strings.ReplaceAll(s, "\n", "\\n")
}
