package graph

// NodeFunc observes node creation and deletion events.
type NodeFunc[K comparable, N comparable] func(node *Node[K, N])

// ChangeFunc observes attribute-change events, receiving the node and the
// key of the changed attribute.
type ChangeFunc[K comparable, N comparable] func(node *Node[K, N], key K)

// typeFilter is an allow-list of node types. An empty filter matches every
// type.
type typeFilter[N comparable] map[N]struct{}

func newTypeFilter[N comparable](types []N) typeFilter[N] {
	if len(types) == 0 {
		return nil
	}
	f := make(typeFilter[N], len(types))
	for _, t := range types {
		f[t] = struct{}{}
	}
	return f
}

func (f typeFilter[N]) matches(t N) bool {
	if len(f) == 0 {
		return true
	}
	_, ok := f[t]
	return ok
}

// filteredNodeCallback pairs a creation/deletion observer with its filter.
// Registrations are immutable once made.
type filteredNodeCallback[K comparable, N comparable] struct {
	fn     NodeFunc[K, N]
	filter typeFilter[N]
}

// filteredChangeCallback pairs an attribute-change observer with its filter.
type filteredChangeCallback[K comparable, N comparable] struct {
	fn     ChangeFunc[K, N]
	filter typeFilter[N]
}

// matchingNodeFuncs snapshots, in registration order, the callbacks whose
// filter admits nodeType. Called with the graph lock held; the snapshot is
// what a queued event dispatches, which keeps per-event invocation counts
// exact even when registrations happen mid-dispatch.
func matchingNodeFuncs[K comparable, N comparable](registry []filteredNodeCallback[K, N], nodeType N) []NodeFunc[K, N] {
	var out []NodeFunc[K, N]
	for _, cb := range registry {
		if cb.filter.matches(nodeType) {
			out = append(out, cb.fn)
		}
	}
	return out
}

func matchingChangeFuncs[K comparable, N comparable](registry []filteredChangeCallback[K, N], nodeType N) []ChangeFunc[K, N] {
	var out []ChangeFunc[K, N]
	for _, cb := range registry {
		if cb.filter.matches(nodeType) {
			out = append(out, cb.fn)
		}
	}
	return out
}
