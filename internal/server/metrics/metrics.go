// Package metrics exposes Prometheus collectors for the wishlist service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled HTTP requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "giftgenie",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	// ClaimConflicts counts claim attempts rejected because another
	// recipient already holds the item.
	ClaimConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "giftgenie",
		Subsystem: "claims",
		Name:      "conflicts_total",
		Help:      "Claim attempts rejected because the item is already claimed.",
	})

	// PartialFailures counts multi-entity operations that committed only
	// some of their writes.
	PartialFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "giftgenie",
		Subsystem: "storage",
		Name:      "partial_failures_total",
		Help:      "Multi-entity operations that committed only part of their writes.",
	}, []string{"op"})
)
