package types

import "sync"

// Registry is the read surface topology layers consume. Entries may
// appear or disappear between calls; a nil Peek result is a normal
// outcome of that drift, not an error. The *Node returned by Peek is
// also the mutable handle forwarded during view export.
type Registry interface {
	// AvailableNodes returns the addresses currently known.
	AvailableNodes() []Address

	// Peek returns the node registered under addr, or nil.
	Peek(addr Address) *Node
}

//-----------------------------------------------------------------------------

// NodeSet is a concurrency-safe in-memory Registry. Lookup and removal
// are O(1); enumeration copies the address list so callers may iterate
// without holding any lock.
type NodeSet struct {
	mtx    sync.Mutex
	lookup map[Address]*nodeSetItem
	list   []*Node
}

type nodeSetItem struct {
	node  *Node
	index int
}

var _ Registry = (*NodeSet)(nil)

func NewNodeSet() *NodeSet {
	return &NodeSet{
		lookup: make(map[Address]*nodeSetItem),
		list:   make([]*Node, 0, 64),
	}
}

// Add registers node, replacing any previous entry for its address.
func (ns *NodeSet) Add(node *Node) {
	ns.mtx.Lock()
	defer ns.mtx.Unlock()

	if item, ok := ns.lookup[node.Address()]; ok {
		item.node = node
		ns.list[item.index] = node
		return
	}
	ns.list = append(ns.list, node)
	ns.lookup[node.Address()] = &nodeSetItem{node: node, index: len(ns.list) - 1}
}

func (ns *NodeSet) Has(addr Address) bool {
	ns.mtx.Lock()
	defer ns.mtx.Unlock()
	_, ok := ns.lookup[addr]
	return ok
}

func (ns *NodeSet) Peek(addr Address) *Node {
	ns.mtx.Lock()
	defer ns.mtx.Unlock()
	if item, ok := ns.lookup[addr]; ok {
		return item.node
	}
	return nil
}

// Remove drops the entry for addr, if present. The last list element is
// swapped into the vacated slot.
func (ns *NodeSet) Remove(addr Address) {
	ns.mtx.Lock()
	defer ns.mtx.Unlock()

	item, ok := ns.lookup[addr]
	if !ok {
		return
	}
	last := len(ns.list) - 1
	if item.index != last {
		moved := ns.list[last]
		ns.list[item.index] = moved
		ns.lookup[moved.Address()].index = item.index
	}
	ns.list[last] = nil
	ns.list = ns.list[:last]
	delete(ns.lookup, addr)
}

func (ns *NodeSet) Size() int {
	ns.mtx.Lock()
	defer ns.mtx.Unlock()
	return len(ns.list)
}

func (ns *NodeSet) AvailableNodes() []Address {
	ns.mtx.Lock()
	defer ns.mtx.Unlock()
	addrs := make([]Address, len(ns.list))
	for i, node := range ns.list {
		addrs[i] = node.Address()
	}
	return addrs
}
