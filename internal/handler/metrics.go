package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shopping_cart",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total number of orders created from carts",
		},
	)

	ordersPaid = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shopping_cart",
			Subsystem: "orders",
			Name:      "paid_total",
			Help:      "Total number of payments applied to orders",
		},
	)

	ordersCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shopping_cart",
			Subsystem: "orders",
			Name:      "cancelled_total",
			Help:      "Total number of cancelled orders",
		},
	)

	cartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shopping_cart",
			Subsystem: "cart",
			Name:      "mutations_total",
			Help:      "Total number of cart mutations by operation",
		},
		[]string{"operation"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		ordersPaid,
		ordersCancelled,
		cartMutations,
	)
}
