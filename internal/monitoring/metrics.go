// Package monitoring exposes the service's Prometheus metrics.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters tracked across the ticket lifecycle.
type Metrics struct {
	// Engine operations, labelled by operation and outcome
	// (ok, invalid, duplicate, capped, not_found, unavailable, error).
	Operations *prometheus.CounterVec

	// Tickets admitted into the remote backend.
	TicketsCreated prometheus.Counter

	// Broker publishes that were logged and swallowed, by queue.
	PublishFailures *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Operations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phishstory_operations_total",
				Help: "Ticket engine operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		TicketsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "phishstory_tickets_created_total",
				Help: "Abuse tickets admitted into the ticketing backend",
			},
		),
		PublishFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "phishstory_publish_failures_total",
				Help: "Broker publishes that failed and were swallowed",
			},
			[]string{"queue"},
		),
	}
}

// NewTestMetrics creates metrics on a private registry, for tests that
// build multiple engines in one process.
func NewTestMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{Name: "phishstory_operations_total", Help: "test"},
			[]string{"operation", "outcome"},
		),
		TicketsCreated: factory.NewCounter(
			prometheus.CounterOpts{Name: "phishstory_tickets_created_total", Help: "test"},
		),
		PublishFailures: factory.NewCounterVec(
			prometheus.CounterOpts{Name: "phishstory_publish_failures_total", Help: "test"},
			[]string{"queue"},
		),
	}
}
