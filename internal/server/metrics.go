package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recommender_requests_total",
		Help: "Recommendation requests received.",
	})
	requestFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recommender_request_failures_total",
		Help: "Recommendation requests that ended in an error response.",
	})
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recommender_cache_hits_total",
		Help: "Recommendation responses served from the Redis cache.",
	})
)
