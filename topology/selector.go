package topology

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	tmmath "github.com/overlaynet/poldercast/libs/math"
	tmrand "github.com/overlaynet/poldercast/libs/rand"
	"github.com/overlaynet/poldercast/types"
)

type rankedNode struct {
	node      *types.Node
	proximity types.Proximity
}

// selectClosest returns the addresses of at most limit candidates,
// ordered by ascending proximity to target. The candidate slice is
// shuffled in place.
//
// The shuffle must happen before ranking: registries tend to enumerate
// in a stable, quasi-sorted order (e.g. grouped by address hash), and
// ranking such input by proximity alone converges to the same subset
// every epoch whenever many candidates tie on proximity. Randomizing
// tie order first keeps membership among equally-near peers rotating
// across calls, which the dissemination protocol depends on.
func selectClosest(rng *tmrand.Rand, target types.Profile, candidates []*types.Node, limit int) []types.Address {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	ranked := rankByProximity(target, candidates)

	// Ties are already in random order, so an unstable sort loses nothing.
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].proximity < ranked[j].proximity
	})

	n := tmmath.MinInt(limit, len(ranked))
	selection := make([]types.Address, n)
	for i, r := range ranked[:n] {
		selection[i] = r.node.Address()
	}
	return selection
}

// rankByProximity scores every candidate against target. Proximity
// evaluation is pure and independent per candidate, so large pools are
// scored across worker goroutines.
func rankByProximity(target types.Profile, candidates []*types.Node) []rankedNode {
	ranked := make([]rankedNode, len(candidates))
	score := func(start, end int) {
		for i := start; i < end; i++ {
			ranked[i] = rankedNode{
				node:      candidates[i],
				proximity: target.Proximity(candidates[i].Profile()),
			}
		}
	}

	if len(candidates) < minParallelRank {
		score(0, len(candidates))
		return ranked
	}

	workers := tmmath.MinInt(maxRankWorkers, runtime.NumCPU())
	chunk := (len(candidates) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(candidates); start += chunk {
		start := start
		end := tmmath.MinInt(start+chunk, len(candidates))
		g.Go(func() error {
			score(start, end)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // scoring never fails
	return ranked
}
