package board

// pseudoRand is a xorshift64* generator for reproducible test positions.
type pseudoRand struct {
	s uint64
}

func newPseudoRand(seed uint64) *pseudoRand {
	return &pseudoRand{s: seed}
}

// SparseUint64 returns a word with roughly an eighth of its bits set.
func (r *pseudoRand) SparseUint64() uint64 {
	return r.Uint64() & r.Uint64() & r.Uint64()
}

func (r *pseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
