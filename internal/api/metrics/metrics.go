// Package metrics defines the custom Prometheus metrics of the YAPARIM
// marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// All metrics register with the default registry on package init through
// promauto, so /metrics exposes them next to the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "yaparim"

// Result label values.
const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// ── Accounts ──────────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts completed registrations.
// Label:
//   - preferred_role: "poster", "provider" or "both"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered users, by preferred role.",
	},
	[]string{"preferred_role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "rejected" (bad credentials) or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RoleSelectionsTotal counts session role selections.
// Label:
//   - role: "poster" or "provider"
var RoleSelectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_selections_total",
		Help:      "Total number of session role selections, by role.",
	},
	[]string{"role"},
)

// ── Tasks ─────────────────────────────────────────────────────────────────────

// TasksCreatedTotal counts newly posted tasks.
// Label:
//   - category: one of the catalog categories (e.g. "Temizlik")
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by category.",
	},
	[]string{"category"},
)

// ── Applications ──────────────────────────────────────────────────────────────

// ApplicationsTotal counts application attempts.
// Label:
//   - result: "success", "rejected" (self, duplicate, invalid) or "error"
var ApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of task applications, by result.",
	},
	[]string{"result"},
)
