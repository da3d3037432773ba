// Package metrics exposes Prometheus counters and histograms for the
// planner service, following the promauto registration style used
// elsewhere in the backend.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	planRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goap_plan_requests_total",
		Help: "Total number of Plan calls, labeled by diagnostic outcome",
	}, []string{"diagnostic"})

	planDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "goap_plan_duration_seconds",
		Help:    "Wall-clock duration of Plan calls",
		Buckets: prometheus.DefBuckets,
	})

	planSearchNodesVisited = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "goap_plan_search_nodes_visited",
		Help:    "Number of search nodes visited per Plan call",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	})

	planCostGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "goap_plan_last_cost",
		Help: "Total cost of the most recently found plan",
	})

	cacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "goap_cache_requests_total",
		Help: "Total cache lookups, labeled by outcome (hit/miss)",
	}, []string{"outcome"})
)

// RecordPlanResult records the outcome of a single Plan call: the
// diagnostic, its duration, and (when a plan was found) its cost.
func RecordPlanResult(diagnostic string, durationSeconds float64, nodesVisited int, cost uint64) {
	planRequestsTotal.WithLabelValues(diagnostic).Inc()
	planDurationSeconds.Observe(durationSeconds)
	planSearchNodesVisited.Observe(float64(nodesVisited))
	if diagnostic == "found_plan" {
		planCostGauge.Set(float64(cost))
	}
}

// RecordCacheHit increments the cache hit counter.
func RecordCacheHit() {
	cacheHitsTotal.WithLabelValues("hit").Inc()
}

// RecordCacheMiss increments the cache miss counter.
func RecordCacheMiss() {
	cacheHitsTotal.WithLabelValues("miss").Inc()
}

// Handler returns the HTTP handler exposing metrics in Prometheus
// exposition format, mounted at /metrics by cmd/planner-service.
func Handler() http.Handler {
	return promhttp.Handler()
}
