// Package metrics defines and registers all custom Prometheus metrics for the
// clinic admin API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
// Label:
//   - role: the role resolved for the session (e.g. "Admin")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// LoginFailuresTotal counts rejected login attempts.
// Label:
//   - reason: "empty_input", "unknown_user", or "wrong_password"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of failed login attempts, by reason.",
	},
	[]string{"reason"},
)

// ActiveSessions tracks the number of live sessions.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Current number of live sessions.",
	},
)

// ── Access-control metrics ────────────────────────────────────────────────────

// NavigationsTotal counts allowed section transitions.
// Label:
//   - section: the section navigated to
var NavigationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigations_total",
		Help:      "Total number of allowed section navigations, by section.",
	},
	[]string{"section"},
)

// AccessDeniedTotal counts denied section requests.
// Labels:
//   - section: the requested section
//   - role: the requesting session's role
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of denied section requests, by section and role.",
	},
	[]string{"section", "role"},
)
