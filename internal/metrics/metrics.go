package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TopupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "topups_total",
			Help: "Top-up transactions by terminal state",
		},
		[]string{"state"},
	)

	TopupAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "topup_amounts",
			Help:    "Distribution of successfully credited top-up amounts",
			Buckets: prometheus.ExponentialBuckets(10, 2, 14),
		},
		[]string{"method"},
	)

	PollAttempts = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "topup_poll_attempts",
			Help:    "Poll cycles performed before a transaction terminated",
			Buckets: prometheus.LinearBuckets(0, 2, 16),
		},
	)

	CreditsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_credits_total",
			Help: "Ledger credit calls by outcome (applied or duplicate no-op)",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		TopupsTotal,
		TopupAmounts,
		PollAttempts,
		CreditsTotal,
	)
}
