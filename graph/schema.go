package graph

import "github.com/gravity-graph/gravity/param"

// SchemaProvider decides which attributes a node of a given type carries.
// ParameterSet is called exactly once per CreateNode, at construction time;
// the graph stores the returned map without interpreting it and never calls
// the provider again for that node.
type SchemaProvider[K comparable, N comparable] interface {
	ParameterSet(nodeType N) (map[K]*param.Parameter, error)
}

// SchemaProviderFunc adapts a plain function to the SchemaProvider
// interface.
type SchemaProviderFunc[K comparable, N comparable] func(nodeType N) (map[K]*param.Parameter, error)

// ParameterSet calls f.
func (f SchemaProviderFunc[K, N]) ParameterSet(nodeType N) (map[K]*param.Parameter, error) {
	return f(nodeType)
}
