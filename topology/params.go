package topology

const (
	// max peers retained in the vicinity view per epoch.
	DefaultMaxViewSize = 20

	// max peers recommended per outgoing gossip.
	DefaultMaxGossipLength = 10

	// candidates below which proximity ranking stays on one goroutine;
	// fanning out is not worth the scheduling cost for small pools.
	minParallelRank = 256

	// upper bound on ranking worker goroutines.
	maxRankWorkers = 8
)
