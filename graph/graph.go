package graph

import (
	"fmt"
	"sync"

	"github.com/gravity-graph/gravity/param"
)

// nodeState is the graph-owned state of one live node. The attribute key
// set is fixed at creation; only the values behind the keys change.
type nodeState[K comparable, N comparable] struct {
	nodeType N
	params   map[K]*param.Parameter

	// deleting marks a node whose delete callbacks are in flight. The node
	// stays readable until they finish, but a second DeleteNode must fail.
	deleting bool
}

// slot is one arena cell. gen increments when the slot is freed, which is
// what invalidates outstanding handles to the old occupant.
type slot[K comparable, N comparable] struct {
	gen  uint32
	node *nodeState[K, N]
}

// Graph owns a schema provider, the live-node arena, and three ordered
// registries of filtered callbacks. See the package documentation for the
// concurrency model.
type Graph[K comparable, N comparable] struct {
	provider SchemaProvider[K, N]

	mu    sync.RWMutex
	slots []slot[K, N]
	free  []uint32

	onCreate []filteredNodeCallback[K, N]
	onDelete []filteredNodeCallback[K, N]
	onChange []filteredChangeCallback[K, N]

	// Notification FIFO. dispatching is true while some goroutine drains
	// the queue; jobs enqueued during a drain (by callbacks or by
	// concurrent operations) are picked up by the active drainer.
	dispatching bool
	queue       []func()
}

// New constructs a graph around the given schema provider. The graph owns
// the provider for its lifetime. Panics when provider is nil, since no
// node could ever be created.
func New[K comparable, N comparable](provider SchemaProvider[K, N]) *Graph[K, N] {
	if provider == nil {
		panic("graph: nil schema provider")
	}
	return &Graph[K, N]{provider: provider}
}

// CreateNode asks the schema provider for the attribute set of nodeType,
// stores a new node built around it, and fires the matching create
// callbacks in registration order. A provider failure aborts creation
// before any state change or notification.
func (g *Graph[K, N]) CreateNode(nodeType N) (*Node[K, N], error) {
	params, err := g.provider.ParameterSet(nodeType)
	if err != nil {
		return nil, fmt.Errorf("schema provider for type %v: %w", nodeType, err)
	}

	g.mu.Lock()
	h := g.alloc(&nodeState[K, N]{nodeType: nodeType, params: params})
	node := &Node[K, N]{g: g, h: h}
	cbs := matchingNodeFuncs(g.onCreate, nodeType)
	g.enqueueAndDrainLocked(func() {
		for _, fn := range cbs {
			fn(node)
		}
	})
	return node, nil
}

// DeleteNode fires the matching delete callbacks, then frees the node's
// slot and bumps its generation so the handle can never resolve again.
// The node enters its terminal state the moment deletion is accepted:
// every client operation on its handle fails with *NodeNotFoundError from
// then on, while the delete callbacks receive a view that stays readable
// until they finish. Deleting an unknown or already-deleted handle fails
// with *NodeNotFoundError.
func (g *Graph[K, N]) DeleteNode(h Handle) error {
	g.mu.Lock()
	st := g.lookupLiveLocked(h)
	if st == nil {
		g.mu.Unlock()
		return &NodeNotFoundError{Handle: h}
	}
	st.deleting = true
	node := &Node[K, N]{g: g, h: h, teardown: true}
	cbs := matchingNodeFuncs(g.onDelete, st.nodeType)
	g.enqueueAndDrainLocked(
		func() {
			for _, fn := range cbs {
				fn(node)
			}
		},
		func() {
			g.mu.Lock()
			g.releaseLocked(h)
			g.mu.Unlock()
		},
	)
	return nil
}

// Node resolves a handle back to a node, failing with *NodeNotFoundError
// when the handle is stale.
func (g *Graph[K, N]) Node(h Handle) (*Node[K, N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.lookupLiveLocked(h) == nil {
		return nil, &NodeNotFoundError{Handle: h}
	}
	return &Node[K, N]{g: g, h: h}, nil
}

// Len returns the number of live nodes.
func (g *Graph[K, N]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for i := range g.slots {
		if g.slots[i].node != nil && !g.slots[i].node.deleting {
			n++
		}
	}
	return n
}

// RegisterOnNodeCreate appends a create observer. The variadic types form
// an allow-list filter; none means the observer sees every node type.
// Registrations cannot be removed and take effect for events fired after
// the call.
func (g *Graph[K, N]) RegisterOnNodeCreate(fn NodeFunc[K, N], types ...N) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onCreate = append(g.onCreate, filteredNodeCallback[K, N]{fn: fn, filter: newTypeFilter(types)})
}

// RegisterOnNodeDelete appends a delete observer, filtered like
// RegisterOnNodeCreate.
func (g *Graph[K, N]) RegisterOnNodeDelete(fn NodeFunc[K, N], types ...N) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onDelete = append(g.onDelete, filteredNodeCallback[K, N]{fn: fn, filter: newTypeFilter(types)})
}

// RegisterOnNodeParameterChange appends an attribute-change observer,
// filtered like RegisterOnNodeCreate.
func (g *Graph[K, N]) RegisterOnNodeParameterChange(fn ChangeFunc[K, N], types ...N) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onChange = append(g.onChange, filteredChangeCallback[K, N]{fn: fn, filter: newTypeFilter(types)})
}

// alloc places st into a free slot (or grows the arena) and returns its
// handle. Generations start at 1 so the zero Handle never resolves. Caller
// holds the write lock.
func (g *Graph[K, N]) alloc(st *nodeState[K, N]) Handle {
	if n := len(g.free); n > 0 {
		idx := g.free[n-1]
		g.free = g.free[:n-1]
		g.slots[idx].node = st
		return Handle{index: idx, gen: g.slots[idx].gen}
	}
	g.slots = append(g.slots, slot[K, N]{gen: 1, node: st})
	return Handle{index: uint32(len(g.slots) - 1), gen: 1}
}

// releaseLocked frees the slot behind h and bumps its generation. Caller
// holds the write lock; h is known valid.
func (g *Graph[K, N]) releaseLocked(h Handle) {
	g.slots[h.index].node = nil
	g.slots[h.index].gen++
	g.free = append(g.free, h.index)
}

// lookupLocked resolves h to its slot's node state, or nil when the handle
// is stale. Caller holds either lock.
func (g *Graph[K, N]) lookupLocked(h Handle) *nodeState[K, N] {
	if int(h.index) >= len(g.slots) {
		return nil
	}
	s := &g.slots[h.index]
	if s.gen != h.gen {
		return nil
	}
	return s.node
}

// lookupLiveLocked resolves h for client operations. A node whose delete
// callbacks are in flight is already Deleted to everyone else, so it does
// not resolve here.
func (g *Graph[K, N]) lookupLiveLocked(h Handle) *nodeState[K, N] {
	st := g.lookupLocked(h)
	if st == nil || st.deleting {
		return nil
	}
	return st
}

// lookupViewLocked resolves h for read access: like lookupLiveLocked,
// except that the teardown view handed to delete observers keeps reading
// the node until its callbacks finish.
func (g *Graph[K, N]) lookupViewLocked(h Handle, teardown bool) *nodeState[K, N] {
	st := g.lookupLocked(h)
	if st == nil || (st.deleting && !teardown) {
		return nil
	}
	return st
}

// enqueueAndDrainLocked appends notification jobs and, unless another drain
// is already running, drains the queue in FIFO order, releasing the write
// lock around each job so callbacks can call back into the graph. Called
// with the write lock held; returns with it released.
func (g *Graph[K, N]) enqueueAndDrainLocked(jobs ...func()) {
	g.queue = append(g.queue, jobs...)
	if g.dispatching {
		g.mu.Unlock()
		return
	}
	g.dispatching = true
	for len(g.queue) > 0 {
		job := g.queue[0]
		g.queue = g.queue[1:]
		g.mu.Unlock()
		job()
		g.mu.Lock()
	}
	g.dispatching = false
	g.mu.Unlock()
}
