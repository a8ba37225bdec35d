package graph

import "github.com/gravity-graph/gravity/param"

// Node is a lightweight façade over a node's handle. Every operation
// revalidates the handle against the owning graph, so a Node held across a
// DeleteNode fails with *NodeNotFoundError rather than touching freed
// state. Nodes are owned by their graph and are safe to copy and retain.
type Node[K comparable, N comparable] struct {
	g *Graph[K, N]
	h Handle

	// teardown marks the view handed to delete observers. It keeps read
	// access while the delete callbacks run; every other facade of the node
	// is already invalid by then.
	teardown bool
}

// Handle returns the node's opaque identity, usable with Graph.Node and
// Graph.DeleteNode.
func (n *Node[K, N]) Handle() Handle { return n.h }

// Graph returns the owning graph.
func (n *Node[K, N]) Graph() *Graph[K, N] { return n.g }

// Type returns the node's immutable type tag.
func (n *Node[K, N]) Type() (N, error) {
	n.g.mu.RLock()
	defer n.g.mu.RUnlock()
	st := n.g.lookupViewLocked(n.h, n.teardown)
	if st == nil {
		var zero N
		return zero, &NodeNotFoundError{Handle: n.h}
	}
	return st.nodeType, nil
}

// Set assigns value into the attribute behind key and fires exactly one
// change notification for (node, key). It fails with *KeyNotFoundError when
// the key is absent from the node's schema and with *TypeLockViolation when
// the attribute's container is locked to a different type; on failure
// nothing is mutated and no notification fires.
//
// Typed attribute access lives in package functions rather than methods
// because Go methods cannot introduce type parameters.
func Set[T any, K comparable, N comparable](n *Node[K, N], key K, value T) error {
	g := n.g
	g.mu.Lock()
	st := g.lookupLiveLocked(n.h)
	if st == nil {
		g.mu.Unlock()
		return &NodeNotFoundError{Handle: n.h}
	}
	p, ok := st.params[key]
	if !ok {
		g.mu.Unlock()
		return &KeyNotFoundError[K]{Key: key}
	}
	if err := param.Assign(p, value); err != nil {
		g.mu.Unlock()
		return err
	}
	cbs := matchingChangeFuncs(g.onChange, st.nodeType)
	g.enqueueAndDrainLocked(func() {
		for _, fn := range cbs {
			fn(n, key)
		}
	})
	return nil
}

// Modify extracts the attribute behind key as *T, runs mutate on it once in
// place, and fires exactly one change notification. It exists for compound
// attributes where replacing the whole value would be wasteful, such as
// appending to a slice. Extraction failures (*KeyNotFoundError,
// *TypeMismatchError, *EmptyValueError) surface before the mutator runs and
// suppress the notification.
//
// The mutator runs under the graph's write lock and must not call back into
// the graph.
func Modify[T any, K comparable, N comparable](n *Node[K, N], key K, mutate func(*T)) error {
	g := n.g
	g.mu.Lock()
	st := g.lookupLiveLocked(n.h)
	if st == nil {
		g.mu.Unlock()
		return &NodeNotFoundError{Handle: n.h}
	}
	p, ok := st.params[key]
	if !ok {
		g.mu.Unlock()
		return &KeyNotFoundError[K]{Key: key}
	}
	ref, err := param.As[T](p)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	mutate(ref)
	cbs := matchingChangeFuncs(g.onChange, st.nodeType)
	g.enqueueAndDrainLocked(func() {
		for _, fn := range cbs {
			fn(n, key)
		}
	})
	return nil
}

// Get returns a mutable reference to the attribute behind key, failing with
// *KeyNotFoundError for an unknown key or the container's extraction errors
// for a type mismatch or empty value. Writes through the returned pointer
// bypass change notification; use Set or Modify when observers must see the
// update.
func Get[T any, K comparable, N comparable](n *Node[K, N], key K) (*T, error) {
	g := n.g
	g.mu.RLock()
	defer g.mu.RUnlock()
	st := g.lookupViewLocked(n.h, n.teardown)
	if st == nil {
		return nil, &NodeNotFoundError{Handle: n.h}
	}
	p, ok := st.params[key]
	if !ok {
		return nil, &KeyNotFoundError[K]{Key: key}
	}
	return param.As[T](p)
}
