package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const NameTotalRateLimitedRequests = "total_rate_limited_requests"

var TotalRateLimitedRequests = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalRateLimitedRequests,
		Help:      "Total requests rejected by the rate limiter",
		Namespace: Namespace,
	},
)
