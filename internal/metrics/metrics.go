// Package metrics defines and registers all custom Prometheus metrics for the
// insurance system. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry on import and are
// served by the ops server when OPS_ADDR is set.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "insurance"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "invalid_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "exists" or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by result.",
	},
	[]string{"result"},
)

// ActiveSessions tracks sessions issued and not yet logged out.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Number of sessions issued and not yet logged out.",
	},
)

// ── Policy and claim metrics ──────────────────────────────────────────────────

// PoliciesCreatedTotal counts newly created policies.
// Label:
//   - policy_type: e.g. "auto", "home"
var PoliciesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policies_created_total",
		Help:      "Total number of policies created, by policy type.",
	},
	[]string{"policy_type"},
)

// PolicyTransitionsTotal counts policy status changes.
// Label:
//   - status: the new status
var PolicyTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_transitions_total",
		Help:      "Total number of policy status transitions, by resulting status.",
	},
	[]string{"status"},
)

// ClaimsTotal counts claims by lifecycle step.
// Label:
//   - status: "submitted", "verified" or "rejected"
var ClaimsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "claims_total",
		Help:      "Total number of claims filed or reviewed, by status.",
	},
	[]string{"status"},
)

// ── Snapshot metrics ──────────────────────────────────────────────────────────

// SnapshotOperationsTotal counts JSON snapshot saves and loads.
// Labels:
//   - op: "save" or "load"
//   - result: "success", "not_found", "corrupt" or "error"
var SnapshotOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_operations_total",
		Help:      "Total number of customer snapshot operations.",
	},
	[]string{"op", "result"},
)

// ── Console metrics ───────────────────────────────────────────────────────────

// MenuActionsTotal counts menu actions run from the console.
// Labels:
//   - role: the role of the logged-in user
//   - action: the menu label
var MenuActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_actions_total",
		Help:      "Total number of console menu actions, by role and action.",
	},
	[]string{"role", "action"},
)
