package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gallery metrics
var (
	// EntitiesCreated counts successful creates by entity kind
	EntitiesCreated = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_created_total",
			Help:      "Total number of gallery records created",
		},
		[]string{"kind"},
	)

	// ValidationFailures counts rejected create requests by entity kind
	ValidationFailures = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of create requests rejected by validation",
		},
		[]string{"kind"},
	)

	// ContactNotifications counts contact form deliveries by outcome
	ContactNotifications = promauto.With(Registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_notifications_total",
			Help:      "Total number of contact form notifications",
		},
		[]string{"notifier", "status"}, // status: sent|failed
	)

	// WebSocketClients is the number of connected live-update clients
	WebSocketClients = promauto.With(Registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_clients",
			Help:      "Number of connected live-update websocket clients",
		},
	)
)
