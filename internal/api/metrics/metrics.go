// Package metrics defines all custom Prometheus metrics for the bookmarks
// API. It is the single source of truth for metric names, labels, and help
// strings; promauto registers everything with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookmarks"

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// BookmarksWritesTotal counts bookmark write operations.
// Label:
//   - op: "create", "update", or "delete"
var BookmarksWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmark_writes_total",
		Help:      "Total number of bookmark create/update/delete operations.",
	},
	[]string{"op"},
)

// AuthCacheTotal counts auth-middleware user lookups against the Redis cache.
// Label:
//   - result: "hit" or "miss"
var AuthCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_cache_total",
		Help:      "Total number of authenticated-user cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
