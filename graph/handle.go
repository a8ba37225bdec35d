package graph

import "fmt"

// Handle is the opaque, copyable identity of a node. It stays valid from
// CreateNode until DeleteNode and is permanently invalid afterwards, even if
// the underlying slot is reused for a later node. The zero Handle never
// resolves.
type Handle struct {
	index uint32
	gen   uint32
}

func (h Handle) String() string {
	return fmt.Sprintf("%d@%d", h.index, h.gen)
}
