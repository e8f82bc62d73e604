// Package metrics defines the Prometheus metrics of the doggyrank API.
// Metrics register with the default registry on package init via promauto
// and are exposed by the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "doggyrank"

// VotesTotal counts votes that were persisted.
// Label:
//   - direction: "up" or "down"
var VotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_total",
		Help:      "Total number of votes applied, by direction.",
	},
	[]string{"direction"},
)

// VoteErrorsTotal counts votes that failed.
// Label:
//   - reason: the failing step ("resolve_dog", "resolve_points", "apply_delta")
var VoteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "vote_errors_total",
		Help:      "Total number of votes that failed, by failing step.",
	},
	[]string{"reason"},
)

// DogsCreatedTotal counts breeds seen for the first time.
var DogsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dogs_created_total",
		Help:      "Total number of dog rows created by the registry.",
	},
)

// PointsCreatedTotal counts (user, dog) ledger rows created.
var PointsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "points_created_total",
		Help:      "Total number of points rows created by the ledger.",
	},
)

// VoteDuration measures a vote from registry lookup to persisted score.
var VoteDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "vote_duration_seconds",
		Help:      "Duration of a vote from breed resolution to persisted score.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"direction"},
)

// DogAPIRequestsTotal counts calls to the external dog image API.
// Label:
//   - result: "ok" or "error"
var DogAPIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dogapi_requests_total",
		Help:      "Total number of random dog image requests, by result.",
	},
	[]string{"result"},
)
