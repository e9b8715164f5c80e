package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the service.
type Metrics struct {
	OrdersCreated     prometheus.Counter
	StatusTransitions *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "marblemanager_orders_created_total",
			Help: "Total number of orders created through checkout",
		}),
		StatusTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "marblemanager_order_status_transitions_total",
			Help: "Total number of admin payment-status transitions, by target status",
		}, []string{"status"}),
	}
}

func (m *Metrics) IncrementOrdersCreated() {
	m.OrdersCreated.Inc()
}

func (m *Metrics) IncrementStatusTransition(status string) {
	m.StatusTransitions.WithLabelValues(status).Inc()
}
