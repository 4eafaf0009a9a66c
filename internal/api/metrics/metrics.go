// Package metrics defines and registers all custom Prometheus metrics for
// the link directory. It is the single source of truth for metric names,
// labels, and help strings. Everything registers against the default
// registry via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "linkdir"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// LinksCreatedTotal counts newly created links.
// Label:
//   - category: the role slug (or "other") the link was filed under
var LinksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "links_created_total",
		Help:      "Total number of links created, by category.",
	},
	[]string{"category"},
)

// AuditEntriesTotal counts audit entries successfully persisted.
// Label:
//   - action: the audited action (login, link_added, ...)
var AuditEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_entries_total",
		Help:      "Total number of audit log entries written, by action.",
	},
	[]string{"action"},
)

// AuditFailuresTotal counts audit entries that were lost. Losses are by
// design invisible to the triggering request, so this counter is the only
// place they surface besides the operator log.
// Label:
//   - reason: "insert_failed" or "queue_full"
var AuditFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_failures_total",
		Help:      "Total number of audit log entries dropped, by reason.",
	},
	[]string{"reason"},
)

// AuditQueueDepth tracks the number of audit entries waiting in the
// recorder's channel.
var AuditQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in the recorder queue.",
	},
)

// LogoFetchTotal counts favicon lookups.
// Label:
//   - source: "google", "clearbit", "duckduckgo", "cache", or "none"
var LogoFetchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logo_fetch_total",
		Help:      "Total number of favicon lookups, by winning source.",
	},
	[]string{"source"},
)
