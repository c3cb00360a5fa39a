package syllable

import (
	"math/rand/v2"
	"sort"
	"sync"
)

// draw succeeds with probability p. NaN and p <= 0 never succeed, since
// Float64 is always below 1 p >= 1 always does.
func draw(r *rand.Rand, p float64) bool {
	return p > 0 && r.Float64() < p
}

// picker selects fragments from a single category proportionally to their
// weights. Built once, read only afterwards.
type picker struct {
	frags   Category
	cum     []uint64 // running weight totals, nil when all weights are equal
	uniform bool
}

func newPicker(c Category) picker {
	p := picker{frags: c, uniform: true}
	if len(c) == 0 {
		return p
	}

	first := c[0].weight()
	cum := make([]uint64, len(c))
	var total uint64
	for i, f := range c {
		w := f.weight()
		if w != first {
			p.uniform = false
		}
		total += w
		cum[i] = total
	}
	if !p.uniform {
		p.cum = cum
	}
	return p
}

func (p picker) empty() bool {
	return len(p.frags) == 0
}

func (p picker) pick(r *rand.Rand) Fragment {
	if p.uniform {
		return p.frags[r.IntN(len(p.frags))]
	}
	x := r.Uint64N(p.cum[len(p.cum)-1])
	i := sort.Search(len(p.cum), func(i int) bool { return p.cum[i] > x })
	return p.frags[i]
}

// lockedSource makes caller supplied source safe for concurrent generation.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

// lock wraps src unless it is already guarded.
func lock(src rand.Source) rand.Source {
	if ls, ok := src.(*lockedSource); ok {
		return ls
	}
	return &lockedSource{src: src}
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// entropySource returns new independent source for a single call. Top level
// math/rand/v2 functions are seeded by the runtime and safe for concurrent use.
func entropySource() rand.Source {
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}
