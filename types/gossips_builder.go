package types

// GossipsBuilder accumulates the peers recommended to a single gossip
// recipient. Layers append candidate nodes; the builder drops the
// recipient itself and duplicate addresses so the assembled gossip
// stays well formed even when several layers contribute.
type GossipsBuilder struct {
	recipient Address
	chosen    map[Address]struct{}
	gossips   []*Node
}

func NewGossipsBuilder(recipient Address) *GossipsBuilder {
	return &GossipsBuilder{
		recipient: recipient,
		chosen:    make(map[Address]struct{}),
	}
}

// Recipient returns the address the assembled gossip is intended for.
func (b *GossipsBuilder) Recipient() Address { return b.recipient }

// Add appends node as a recommendation. Adding the recipient itself or
// an address already present is a no-op.
func (b *GossipsBuilder) Add(node *Node) {
	addr := node.Address()
	if addr == b.recipient {
		return
	}
	if _, ok := b.chosen[addr]; ok {
		return
	}
	b.chosen[addr] = struct{}{}
	b.gossips = append(b.gossips, node)
}

// Gossips returns the accumulated recommendations in insertion order.
func (b *GossipsBuilder) Gossips() []*Node { return b.gossips }

func (b *GossipsBuilder) Len() int { return len(b.gossips) }
