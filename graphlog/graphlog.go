// Package graphlog attaches structured logging to a graph through its
// public observer API. The graph core itself carries no logging side
// channel; this package is how an application makes graph activity visible.
package graphlog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gravity-graph/gravity/graph"
)

// Attach registers create, delete, and parameter-change observers on g that
// log each event at Info level. Every entry carries a "graph" field holding
// a fresh uuid for this attachment, so multiple graphs can share one
// logger. A nil logger attaches no-op observers. The optional types filter
// the logged events the same way observer filters do.
//
// Registrations cannot be removed, so Attach binds the logger for the
// graph's lifetime.
func Attach[K comparable, N comparable](g *graph.Graph[K, N], logger *zap.Logger, types ...N) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("graph", uuid.NewString()))

	g.RegisterOnNodeCreate(func(n *graph.Node[K, N]) {
		logger.Info("node created", nodeFields(n)...)
	}, types...)
	g.RegisterOnNodeDelete(func(n *graph.Node[K, N]) {
		logger.Info("node deleted", nodeFields(n)...)
	}, types...)
	g.RegisterOnNodeParameterChange(func(n *graph.Node[K, N], key K) {
		logger.Info("parameter changed", append(nodeFields(n), zap.Any("key", key))...)
	}, types...)
}

func nodeFields[K comparable, N comparable](n *graph.Node[K, N]) []zap.Field {
	fields := []zap.Field{zap.Stringer("handle", n.Handle())}
	if nodeType, err := n.Type(); err == nil {
		fields = append(fields, zap.Any("node_type", nodeType))
	}
	return fields
}
