package graph

// Default instantiation: string attribute keys and unsigned-integer node
// types. A convenience binding, not a separate API.
type (
	// DefaultGraph is a Graph keyed by string attributes and uint32 node
	// types.
	DefaultGraph = Graph[string, uint32]
	// DefaultNode is the node type of a DefaultGraph.
	DefaultNode = Node[string, uint32]
	// DefaultSchemaProvider feeds a DefaultGraph.
	DefaultSchemaProvider = SchemaProvider[string, uint32]
)

// NewDefault constructs a DefaultGraph around provider.
func NewDefault(provider DefaultSchemaProvider) *DefaultGraph {
	return New(provider)
}
