// Package graph implements an in-process scene graph: a collection of typed
// nodes whose attribute sets are supplied per node type by a SchemaProvider,
// with ordered, type-filtered observer callbacks fired on node creation,
// deletion, and attribute change.
//
// The workflow has three roles:
//
//   - Creator: implements SchemaProvider to decide which attributes each
//     node type carries, and constructs the Graph around it.
//   - Client: creates nodes, reads and mutates their attributes, deletes
//     them.
//   - Observer: registers callbacks, optionally filtered to a set of node
//     types, and reacts to graph changes.
//
// Nodes are addressed through handles backed by a slot arena with
// generation counters, so a handle to a deleted node is detected in constant
// time and never aliases reused storage.
//
// Concurrency follows a single-writer model: every mutating operation takes
// the graph's write lock for its state change and appends its notifications
// to a FIFO queue; one goroutine at a time drains the queue, running
// callbacks with the lock released. A mutation performed inside a callback
// applies immediately but its notifications run after the current dispatch
// completes, so callbacks may safely call back into the graph. Read-only
// operations run concurrently under the read lock.
package graph
