// Recipe Vault - Personal Recipe Library and Pack Curation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/recipevault

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	// Storage Metrics
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipevault_store_operation_duration_seconds",
			Help:    "Duration of storage operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipevault_store_operation_errors_total",
			Help: "Total number of failed storage operations",
		},
		[]string{"backend", "operation"},
	)

	// Similarity Metrics
	SimilarityComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipevault_similarity_computations_total",
			Help: "Total number of pairwise recipe similarity computations",
		},
	)

	SimilarityCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipevault_similarity_cache_lookups_total",
			Help: "Similarity cache lookups by result",
		},
		[]string{"layer", "result"}, // layer: "lru", "store"; result: "hit", "miss", "error"
	)

	SimilarityDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipevault_similarity_duration_seconds",
			Help:    "Duration of similarity operations in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)

	// Pack Metrics
	PackSuggestionsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipevault_pack_suggestions_total",
			Help: "Total number of pack suggestions produced by strategy",
		},
		[]string{"strategy"},
	)

	PackBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipevault_pack_build_duration_seconds",
			Help:    "Duration of pack suggestion requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"kind"}, // "suggestions", "themed"
	)

	PackDiversity = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recipevault_pack_diversity_score",
			Help:    "Diversity score of generated packs",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipevault_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recipevault_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipevault_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipevault_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	SimilarityLRUEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipevault_similarity_lru_entries",
			Help: "Entries held by the in-memory similarity cache",
		},
	)

	SimilarityLRUExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipevault_similarity_lru_expired_total",
			Help: "Expired similarity cache entries removed by the janitor",
		},
	)

	// Library Metrics
	LibraryRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recipevault_library_recipes",
			Help: "Number of recipes in the library",
		},
	)

	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recipevault_app_info",
			Help: "Application build information",
		},
		[]string{"version", "storage_backend", "cache_backend"},
	)
)

// RecordStoreOperation records a storage operation metric
func RecordStoreOperation(backend, operation string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(backend, operation).Observe(duration.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(backend, operation).Inc()
	}
}

// RecordSimilarityCacheLookup records a cache lookup on the given layer.
func RecordSimilarityCacheLookup(layer, result string) {
	SimilarityCacheLookups.WithLabelValues(layer, result).Inc()
}

// RecordSimilarityComputations adds n pairwise computations.
func RecordSimilarityComputations(n int) {
	if n > 0 {
		SimilarityComputations.Add(float64(n))
	}
}

// RecordSimilarityDuration records how long a similarity operation took.
func RecordSimilarityDuration(operation string, duration time.Duration) {
	SimilarityDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordPackSuggestion records one emitted pack suggestion.
func RecordPackSuggestion(strategy string, diversity float64) {
	PackSuggestionsGenerated.WithLabelValues(strategy).Inc()
	PackDiversity.Observe(diversity)
}

// RecordPackBuild records the duration of a pack request.
func RecordPackBuild(kind string, duration time.Duration) {
	PackBuildDuration.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordLRUSweep records one janitor pass over the similarity cache.
func RecordLRUSweep(size, expired int) {
	SimilarityLRUEntries.Set(float64(size))
	if expired > 0 {
		SimilarityLRUExpired.Add(float64(expired))
	}
}

// SetLibrarySize updates the recipe count gauge.
func SetLibrarySize(n int) {
	LibraryRecipes.Set(float64(n))
}

// SetAppInfo publishes build information.
func SetAppInfo(version, storageBackend, cacheBackend string) {
	AppInfo.Reset()
	AppInfo.WithLabelValues(version, storageBackend, cacheBackend).Set(1)
}
