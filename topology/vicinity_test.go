package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/overlaynet/poldercast/libs/log"
	tmrand "github.com/overlaynet/poldercast/libs/rand"
	"github.com/overlaynet/poldercast/types"
)

// registryWith builds a NodeSet whose members all report the given
// distance table from their own profiles, so any of them can serve as
// a gossip recipient.
func registryWith(distances map[types.Address]types.Proximity, addrs ...types.Address) *types.NodeSet {
	ns := types.NewNodeSet()
	for _, addr := range addrs {
		ns.Add(types.NewNode(scoredTarget(addr, distances)))
	}
	return ns
}

func TestVicinityAlias(t *testing.T) {
	assert.Equal(t, "vicinity", DefaultVicinity().Alias())
}

func TestVicinityPopulateKeepsClosest(t *testing.T) {
	distances := map[types.Address]types.Proximity{
		"A": 5, "B": 1, "C": 1, "D": 9,
	}
	identity := scoredTarget("self", distances)
	registry := registryWith(distances, "A", "B", "C", "D")

	v := NewVicinity(2, 10)
	v.SetLogger(log.NewTestingLogger(t))

	// ties between B and C may land in either order, but the retained
	// set never changes across epochs.
	for i := 0; i < 20; i++ {
		v.Reset()
		v.Populate(identity, registry)
		assert.ElementsMatch(t, []types.Address{"B", "C"}, v.ViewAddresses())
	}
}

func TestVicinityPopulateExcludesSelf(t *testing.T) {
	distances := map[types.Address]types.Proximity{
		"self": 0, "A": 1, "B": 2,
	}
	identity := scoredTarget("self", distances)
	registry := registryWith(distances, "self", "A", "B")

	v := NewVicinity(10, 10)
	v.Populate(identity, registry)

	require.NotContains(t, v.ViewAddresses(), types.Address("self"))
	assert.ElementsMatch(t, []types.Address{"A", "B"}, v.ViewAddresses())
}

func TestVicinityPopulateReplacesView(t *testing.T) {
	identity := scoredTarget("self", nil)

	v := NewVicinity(10, 10)
	v.Populate(identity, registryWith(nil, "A", "B"))
	require.ElementsMatch(t, []types.Address{"A", "B"}, v.ViewAddresses())

	v.Populate(identity, registryWith(nil, "C"))
	assert.ElementsMatch(t, []types.Address{"C"}, v.ViewAddresses())
}

func TestVicinityResetIdempotent(t *testing.T) {
	identity := scoredTarget("self", nil)

	v := NewVicinity(10, 10)
	v.Populate(identity, registryWith(nil, "A", "B"))
	v.Reset()
	v.Reset()
	assert.Empty(t, v.ViewAddresses())
}

func TestVicinityViewExport(t *testing.T) {
	identity := scoredTarget("self", nil)
	registry := registryWith(nil, "A", "B", "C")

	v := NewVicinity(10, 10)

	// never populated: nothing to export
	builder := types.NewViewBuilder()
	v.View(builder, registry)
	require.Zero(t, builder.Len())

	v.Populate(identity, registry)
	builder = types.NewViewBuilder()
	v.View(builder, registry)
	require.Equal(t, 3, builder.Len())

	// freshly reset: nothing to export
	v.Reset()
	builder = types.NewViewBuilder()
	v.View(builder, registry)
	assert.Zero(t, builder.Len())
}

func TestVicinityViewSkipsEvicted(t *testing.T) {
	identity := scoredTarget("self", nil)
	registry := registryWith(nil, "A", "B", "C")

	v := NewVicinity(10, 10)
	v.Populate(identity, registry)

	// B expires between populate and export
	registry.Remove("B")

	builder := types.NewViewBuilder()
	v.View(builder, registry)

	exported := make([]types.Address, 0, builder.Len())
	for _, node := range builder.View() {
		exported = append(exported, node.Address())
	}
	assert.ElementsMatch(t, []types.Address{"A", "C"}, exported)
}

func TestVicinityGossipsExcludesRecipient(t *testing.T) {
	identity := scoredTarget("self", nil)
	registry := registryWith(nil, "X", "A", "B")

	v := NewVicinity(10, 10)
	builder := types.NewGossipsBuilder("X")
	v.Gossips(identity, builder, registry)

	// bounded by availability, not the configured maximum
	require.Equal(t, 2, builder.Len())
	for _, node := range builder.Gossips() {
		assert.NotEqual(t, types.Address("X"), node.Address())
	}
}

func TestVicinityGossipsRanksByRecipient(t *testing.T) {
	// every profile shares one distance table, so ranking happens from
	// the recipient's vantage point
	distances := map[types.Address]types.Proximity{
		"X": 0, "A": 1, "B": 5, "C": 9,
	}
	identity := scoredTarget("self", distances)
	registry := registryWith(distances, "X", "A", "B", "C")

	v := NewVicinity(10, 2)
	builder := types.NewGossipsBuilder("X")
	v.Gossips(identity, builder, registry)

	require.Equal(t, 2, builder.Len())
	got := []types.Address{builder.Gossips()[0].Address(), builder.Gossips()[1].Address()}
	assert.ElementsMatch(t, []types.Address{"A", "B"}, got)
}

func TestVicinityGossipsUnknownRecipient(t *testing.T) {
	identity := scoredTarget("self", nil)
	registry := registryWith(nil, "A", "B")

	v := NewVicinity(10, 10)
	builder := types.NewGossipsBuilder("nobody")
	builder.Add(registry.Peek("A"))
	require.Equal(t, 1, builder.Len())

	v.Gossips(identity, builder, registry)

	// no-op: the builder keeps exactly what it had
	assert.Equal(t, 1, builder.Len())
	assert.Equal(t, types.Address("A"), builder.Gossips()[0].Address())
}

func TestVicinityGossipsZeroLength(t *testing.T) {
	identity := scoredTarget("self", nil)
	registry := registryWith(nil, "X", "A", "B", "C", "D")

	v := NewVicinity(10, 0)
	builder := types.NewGossipsBuilder("X")
	v.Gossips(identity, builder, registry)

	assert.Zero(t, builder.Len())
}

func TestVicinityBoundsClamped(t *testing.T) {
	identity := scoredTarget("self", nil)
	registry := registryWith(nil, "X", "A", "B")

	v := NewVicinity(-1, -1)
	v.Populate(identity, registry)
	assert.Empty(t, v.ViewAddresses())

	builder := types.NewGossipsBuilder("X")
	v.Gossips(identity, builder, registry)
	assert.Zero(t, builder.Len())
}

func TestVicinitySeededSelectionReproducible(t *testing.T) {
	distances := map[types.Address]types.Proximity{
		"A": 1, "B": 1, "C": 1, "D": 1, "E": 1, "F": 1,
	}
	identity := scoredTarget("self", distances)

	run := func(seed int64) []types.Address {
		v := NewVicinity(3, 10, WithRand(tmrand.NewSeededRand(seed)))
		v.Populate(identity, registryWith(distances, "A", "B", "C", "D", "E", "F"))
		return v.ViewAddresses()
	}

	assert.Equal(t, run(7), run(7))
}
