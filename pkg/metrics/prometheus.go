package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RecoveriesTotal  *prometheus.CounterVec
	ProcessingTime   prometheus.Histogram
	CandidateFlights prometheus.Histogram
	CandidateSeats   prometheus.Histogram
	ErrorsCount      *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecoveriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recoveries_total",
			Help:      "The total number of recovery requests by terminal status",
		}, []string{"status"}),
		ProcessingTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recovery_duration_seconds",
			Help:      "Time taken to resolve a recovery request",
			Buckets:   prometheus.DefBuckets,
		}),
		CandidateFlights: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidate_flights",
			Help:      "Number of candidate flights per successful recovery",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
		CandidateSeats: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "candidate_seats",
			Help:      "Number of candidate seats per successful recovery",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
