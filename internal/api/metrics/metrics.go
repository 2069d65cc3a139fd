// Package metrics defines and registers all custom Prometheus metrics for
// the catalog API. It is the single source of truth for metric names,
// labels, and help strings; the default registry is populated at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "amaris"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role granted at registration ("admin" only for the bootstrap account)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by granted role.",
	},
	[]string{"role"},
)

// ── Quote metrics ─────────────────────────────────────────────────────────────

// QuotesSubmittedTotal counts accepted public quote submissions.
var QuotesSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_submitted_total",
		Help:      "Total number of quote requests accepted.",
	},
)

// QuotesDedupTotal counts deduplication decisions on quote submissions.
// Label:
//   - result: "hit" (replayed) or "miss" (new submission)
var QuotesDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_dedup_total",
		Help:      "Total number of quote dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Notification fan-out metrics ──────────────────────────────────────────────

// FanoutQueueDepth tracks the number of jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var FanoutQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "fanout_queue_depth",
		Help:      "Current number of fan-out jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// FanoutErrorsTotal counts fan-out jobs that failed.
var FanoutErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fanout_errors_total",
		Help:      "Total number of notification fan-out jobs that failed.",
	},
)

// FanoutDuration measures how long one fan-out job takes end-to-end.
var FanoutDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fanout_duration_seconds",
		Help:      "Duration of notification fan-out from dequeue to last insert.",
		Buckets:   prometheus.DefBuckets,
	},
)
