package topology

import (
	"github.com/overlaynet/poldercast/libs/log"
	tmrand "github.com/overlaynet/poldercast/libs/rand"
	"github.com/overlaynet/poldercast/types"
)

// Vicinity maintains interest-induced random links: a bounded view of
// peers whose profiles are nearest the local node's own, with ties
// broken randomly. The view feeds structured layers stacked on top of
// it and is the pool the dissemination protocol draws on to reach
// arbitrary subscribers of a topic.
type Vicinity struct {
	// accessed only by the epoch driver
	view []types.Address

	// immutable after creation
	maxViewSize     int
	maxGossipLength int

	rand    *tmrand.Rand
	logger  log.Logger
	metrics *Metrics
}

var _ Layer = (*Vicinity)(nil)

// VicinityOption configures a Vicinity at construction.
type VicinityOption func(*Vicinity)

// WithRand replaces the layer's randomness source. Tests inject a
// seeded source here to pin the selection permutation.
func WithRand(r *tmrand.Rand) VicinityOption {
	return func(v *Vicinity) { v.rand = r }
}

// WithMetrics attaches metrics to the layer.
func WithMetrics(m *Metrics) VicinityOption {
	return func(v *Vicinity) { v.metrics = m }
}

// NewVicinity creates a vicinity layer with explicit bounds. Negative
// bounds are clamped to zero; a zero bound is legal and yields empty
// output for the corresponding operation.
func NewVicinity(maxViewSize, maxGossipLength int, opts ...VicinityOption) *Vicinity {
	if maxViewSize < 0 {
		maxViewSize = 0
	}
	if maxGossipLength < 0 {
		maxGossipLength = 0
	}
	v := &Vicinity{
		view:            make([]types.Address, 0, maxViewSize),
		maxViewSize:     maxViewSize,
		maxGossipLength: maxGossipLength,
		rand:            tmrand.NewRand(),
		logger:          log.NewNopLogger(),
		metrics:         NopMetrics(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// DefaultVicinity creates a vicinity layer with the default bounds.
func DefaultVicinity(opts ...VicinityOption) *Vicinity {
	return NewVicinity(DefaultMaxViewSize, DefaultMaxGossipLength, opts...)
}

// SetLogger sets the layer's logger.
func (v *Vicinity) SetLogger(l log.Logger) {
	v.logger = l.With("layer", v.Alias())
}

func (v *Vicinity) Alias() string { return "vicinity" }

// Reset clears the view for the next epoch.
func (v *Vicinity) Reset() {
	v.view = v.view[:0]
}

// Populate replaces the view with the peers nearest the local node's
// own profile, drawn from everything the registry currently reports.
// Addresses the registry cannot resolve are a benign enumeration race
// and are skipped.
func (v *Vicinity) Populate(identity types.Profile, nodes types.Registry) {
	self := identity.Address()
	available := nodes.AvailableNodes()

	candidates := make([]*types.Node, 0, len(available))
	for _, addr := range available {
		if addr == self {
			continue
		}
		if node := nodes.Peek(addr); node != nil {
			candidates = append(candidates, node)
		}
	}

	v.view = selectClosest(v.rand, identity, candidates, v.maxViewSize)

	v.metrics.VicinityViewSize.Set(float64(len(v.view)))
	v.logger.Debug("populated view", "size", len(v.view), "candidates", len(candidates))
}

// Gossips recommends to the builder's recipient the peers nearest the
// recipient's own profile, drawn from the entire registry rather than
// the local view to maximize what the recipient can discover. An
// unknown recipient makes the call a no-op.
func (v *Vicinity) Gossips(identity types.Profile, builder *types.GossipsBuilder, nodes types.Registry) {
	recipient := builder.Recipient()
	recipientNode := nodes.Peek(recipient)
	if recipientNode == nil {
		v.metrics.UnknownRecipients.Add(1)
		v.logger.Debug("skipping gossip for unknown recipient", "recipient", recipient)
		return
	}

	available := nodes.AvailableNodes()
	candidates := make([]*types.Node, 0, len(available))
	for _, addr := range available {
		if addr == recipient {
			continue
		}
		if node := nodes.Peek(addr); node != nil {
			candidates = append(candidates, node)
		}
	}

	selection := selectClosest(v.rand, recipientNode.Profile(), candidates, v.maxGossipLength)
	added := 0
	for _, addr := range selection {
		if node := nodes.Peek(addr); node != nil {
			builder.Add(node)
			added++
		}
	}

	v.metrics.GossipsRecommended.Add(float64(added))
}

// View forwards the current view's node handles into builder.
// Addresses evicted from the registry since the last Populate are
// skipped; export never fails on registry drift.
func (v *Vicinity) View(builder *types.ViewBuilder, nodes types.Registry) {
	for _, addr := range v.view {
		if node := nodes.Peek(addr); node != nil {
			builder.Add(node)
		}
	}
}

// ViewAddresses returns a copy of the current view.
func (v *Vicinity) ViewAddresses() []types.Address {
	out := make([]types.Address, len(v.view))
	copy(out, v.view)
	return out
}
