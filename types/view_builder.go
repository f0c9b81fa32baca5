package types

// ViewBuilder merges the views of all topology layers into one combined
// overlay view. Layers forward mutable node handles; duplicates across
// layers collapse to the first handle seen.
type ViewBuilder struct {
	seen  map[Address]struct{}
	nodes []*Node
}

func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{seen: make(map[Address]struct{})}
}

// Add merges node into the combined view.
func (b *ViewBuilder) Add(node *Node) {
	addr := node.Address()
	if _, ok := b.seen[addr]; ok {
		return
	}
	b.seen[addr] = struct{}{}
	b.nodes = append(b.nodes, node)
}

// View returns the merged handles in insertion order.
func (b *ViewBuilder) View() []*Node { return b.nodes }

func (b *ViewBuilder) Len() int { return len(b.nodes) }
