// Package metrics defines and registers all custom Prometheus metrics for the
// suppliers API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fornecedores"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "locked", or "failed"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts access tokens issued after register and login.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// SupplierWritesTotal counts supplier write operations by outcome.
// Labels:
//   - operation: "create", "update", or "delete"
//   - result: "ok", "not_found", "validation", or "failed"
var SupplierWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "supplier_writes_total",
		Help:      "Total number of supplier write operations, by outcome.",
	},
	[]string{"operation", "result"},
)
