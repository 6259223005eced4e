package procgen

// Source is an explicit PRNG state. Every generation call derives exactly
// one Source from its seed string and threads it through all randomness,
// so identical seeds replay byte-for-byte and concurrent calls never
// share state. The algorithm is fixed on purpose; math/rand gives no
// cross-version stream stability.
type Source struct {
	state uint32
}

// Hash folds a seed string order-sensitively into the initial state.
func Hash(seed string) uint32 {
	var h uint32
	for _, c := range seed {
		h = h*31 + uint32(c)
	}
	if h == 0 {
		h = 0x9e3779b9
	}
	return h
}

func NewSource(seed string) *Source {
	return &Source{state: Hash(seed)}
}

// Next returns the next value in [0, 1).
func (s *Source) Next() float64 {
	s.state += 0x6d2b79f5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// IntN returns an int in [0, n). n <= 0 yields 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return int(s.Next() * float64(n))
}

// Range returns a float64 in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.Next()*(hi-lo)
}

// Pick returns a uniformly chosen element, or "" for an empty list.
func (s *Source) Pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[s.IntN(len(list))]
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.Next() < p
}
