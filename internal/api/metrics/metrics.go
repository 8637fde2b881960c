// Package metrics defines and registers the custom Prometheus metrics of the
// RentSoft API. HTTP request metrics come from echoprometheus; the counters
// here track domain activity.
//
// All metrics are registered with the default registry at package init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "rentsoft"

// Outcome labels for AuthAttemptsTotal.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeError              = "error"
)

// EntitiesCreatedTotal counts successfully created records.
// Label:
//   - kind: "user", "property", "amenity", "unit", "lease", "application",
//     "maintenance" or "payment"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of records created, by kind.",
	},
	[]string{"kind"},
)

// LeaseActivationsTotal counts leases that entered ACTIVE, either on creation
// or through a status change. Each activation marks its unit OCCUPIED.
var LeaseActivationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lease_activations_total",
		Help:      "Total number of leases activated.",
	},
)

// AuthAttemptsTotal counts login attempts.
// Label:
//   - outcome: "success", "invalid_credentials" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)
