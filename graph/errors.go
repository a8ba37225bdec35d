package graph

import "fmt"

// NodeNotFoundError reports an operation addressed to a handle that does not
// resolve to a live node: it never existed, or the node was deleted.
type NodeNotFoundError struct {
	Handle Handle
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %v not found", e.Handle)
}

// KeyNotFoundError reports an attribute access with a key absent from the
// node's schema. Key sets are fixed at creation time.
type KeyNotFoundError[K comparable] struct {
	Key K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("parameter %v not found", e.Key)
}
