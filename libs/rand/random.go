package rand

import (
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
)

// Rand is a concurrency-safe source of pseudo-randomness, seeded from
// OS randomness at construction. Like any math/rand generator it is
// not suitable for cryptographic use.
type Rand struct {
	sync.Mutex
	rand *mrand.Rand
}

// NewRand returns a prng seeded with OS randomness obtained from
// crypto/rand.
func NewRand() *Rand {
	var seed int64
	binary.Read(crand.Reader, binary.BigEndian, &seed) //nolint:errcheck
	return NewSeededRand(seed)
}

// NewSeededRand returns a prng with a fixed seed, for reproducible
// sequences under test.
func NewSeededRand(seed int64) *Rand {
	return &Rand{rand: mrand.New(mrand.NewSource(seed))}
}

// Seed reseeds the generator.
func (r *Rand) Seed(seed int64) {
	r.Lock()
	r.rand.Seed(seed)
	r.Unlock()
}

func (r *Rand) Intn(n int) int {
	r.Lock()
	i := r.rand.Intn(n)
	r.Unlock()
	return i
}

func (r *Rand) Int63() int64 {
	r.Lock()
	i := r.rand.Int63()
	r.Unlock()
	return i
}

// Perm returns a uniform pseudo-random permutation of [0, n).
func (r *Rand) Perm(n int) []int {
	r.Lock()
	p := r.rand.Perm(n)
	r.Unlock()
	return p
}

// Shuffle pseudo-randomizes the order of n elements through the
// caller-supplied swap, as math/rand.Shuffle does.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.Lock()
	r.rand.Shuffle(n, swap)
	r.Unlock()
}
