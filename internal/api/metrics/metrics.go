// Package metrics defines and registers all custom Prometheus metrics for
// the commerce API. It is the single source of truth for metric names,
// labels, and help strings. Metrics are registered with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// TokenRefreshesTotal counts refresh-token rotations.
// Label:
//   - result: "success" or "failure"
var TokenRefreshesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Total number of refresh-token rotations, labelled by result.",
	},
	[]string{"result"},
)

// RateLimitedLoginsTotal counts logins rejected by the Redis attempt limiter.
var RateLimitedLoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_logins_total",
		Help:      "Total number of login requests rejected by the attempt limiter.",
	},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts newly created products.
// Label:
//   - category: product category as submitted
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created, by category.",
	},
	[]string{"category"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditEventsProcessedTotal counts audit events persisted successfully.
// Label:
//   - action: the audited action (e.g. "login", "role_change")
var AuditEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_processed_total",
		Help:      "Total number of audit events successfully persisted.",
	},
	[]string{"action"},
)

// AuditErrorsTotal counts audit events that failed to persist.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of audit events that failed processing.",
	},
	[]string{"reason"},
)

// AuditQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditProcessingDuration measures how long persisting one audit event takes.
// Label:
//   - action: the audited action
var AuditProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_processing_duration_seconds",
		Help:      "Duration of audit event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)
