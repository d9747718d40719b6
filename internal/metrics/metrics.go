// Package metrics defines the Prometheus instruments maintained by the core
// registries. It is the single source of truth for metric names, labels, and
// help strings. Instruments register themselves on the default registry via
// promauto; no scrape surface is exposed by this system, but the counters are
// available to any embedding process that wants one.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workforce"

// LoginsTotal counts login attempts.
// Label:
//   - result: "manager", "laborer", or "invalid"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// RowsIngestedTotal counts employee rows admitted into the directory.
var RowsIngestedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_ingested_total",
		Help:      "Total number of employee records admitted at load time.",
	},
)

// RowsSkippedTotal counts employee rows rejected at load time.
// Label:
//   - reason: "missing_field" or "duplicate_username"
var RowsSkippedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_skipped_total",
		Help:      "Total number of employee records skipped at load time.",
	},
	[]string{"reason"},
)

// TasksCreatedTotal counts created tasks.
// Label:
//   - assignment: "employee", "group", or "none"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by assignment target kind.",
	},
	[]string{"assignment"},
)

// StatusChangesTotal counts task status updates.
var StatusChangesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_changes_total",
		Help:      "Total number of task status transitions applied.",
	},
)

// GroupsCreatedTotal counts groups created after the seeded default.
var GroupsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "groups_created_total",
		Help:      "Total number of groups created explicitly.",
	},
)
