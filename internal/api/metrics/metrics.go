// Package metrics defines and registers all custom Prometheus metrics for the
// airline API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register themselves with the default registry at init time; the
// /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "airline"

// TokensIssuedTotal counts bearer tokens handed out on register and login.
// Label:
//   - grant: "register", "login" or "login_phone"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued, by grant.",
	},
	[]string{"grant"},
)

// AuthFailuresTotal counts rejected requests at the security boundary.
// Label:
//   - reason: "unauthenticated" (401) or "forbidden" (403)
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected with 401 or 403.",
	},
	[]string{"reason"},
)

// UserMutationsTotal counts successful writes to the users table.
// Label:
//   - op: "create", "update" or "delete"
var UserMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_mutations_total",
		Help:      "Total number of successful user create/update/delete operations.",
	},
	[]string{"op"},
)

// RouteMutationsTotal counts successful writes to the routes table.
// Label:
//   - op: "create", "update" or "delete"
var RouteMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_mutations_total",
		Help:      "Total number of successful route create/update/delete operations.",
	},
	[]string{"op"},
)

// RouteCacheTotal counts cache decisions on route lookups.
// Label:
//   - result: "hit" or "miss"
var RouteCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "route_cache_total",
		Help:      "Total number of route cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
