// Provides a seeded PRNG for the random-vehicle-station rebalancer: a
// single seed derives an isolated generator per named subsystem so adding
// a new stochastic subsystem later never perturbs existing draws.

package sim

import (
	"hash/fnv"
	"math/rand"
)

// SubsystemRebalancer is the RNG subsystem name used by the RVS rebalancer.
const SubsystemRebalancer = "rebalancer"

// PartitionedRNG provides deterministic, isolated RNG instances per named
// subsystem, derived from a single master seed.
type PartitionedRNG struct {
	seed       int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{seed: seed, subsystems: make(map[string]*rand.Rand)}
}

// ForSubsystem returns a cached, deterministically-seeded *rand.Rand for
// name: seed XOR fnv1a64(name). Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	derived := p.seed ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derived))
	p.subsystems[name] = rng
	return rng
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
