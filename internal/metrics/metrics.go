// Package metrics holds the engine's prometheus collectors. Exposition is the
// host's job; the engine only increments.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesHandled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dialogue_messages_handled_total",
			Help: "Total number of messages handled, by classified intent",
		},
		[]string{"intent"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dialogue_active_sessions",
			Help: "Number of live user sessions",
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dialogue_sessions_evicted_total",
			Help: "Total number of sessions evicted for idleness",
		},
	)

	CartItemsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dialogue_cart_items_added_total",
			Help: "Total number of cart line additions or increments",
		},
	)

	KnowledgeSearches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dialogue_knowledge_searches_total",
			Help: "Total number of knowledge base searches issued by handlers",
		},
	)
)
