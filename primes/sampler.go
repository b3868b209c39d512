package primes

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartcontractkit/nnprime/natural"
	"github.com/smartcontractkit/nnprime/rng"
)

// Sampler draws uniformly distributed natural numbers using a general-purpose rng.Source.
// A Sampler is only safe for concurrent use if its source is (see rng.Locked).
type Sampler struct {
	src     rng.Source
	metrics *metrics
}

// NewSampler returns a Sampler reading from src. The registerer may be nil.
func NewSampler(src rng.Source, registerer prometheus.Registerer) *Sampler {
	return newSampler(src, newMetrics(registerer))
}

func newSampler(src rng.Source, m *metrics) *Sampler {
	if src == nil {
		panic("primes: nil randomness source")
	}
	return &Sampler{src, m}
}

// Uniform returns a number uniformly distributed in [0, n]. n is not modified. Panics if n is zero.
//
// The result is built one digit at a time, starting with a leading digit drawn from [0, d] where d is the leading
// digit of n. Each further digit is drawn from [0, 9]. Whenever the partial result exceeds the equally long prefix of
// n, it is discarded and sampling starts over from the leading digit. This is the rejection scheme
//
//	uniform(n) = let r = 10 * uniform(n / 10) + digit in (r <= n ? r : uniform(n))
//
// unrolled into a loop, consuming the same sequence of draws. Each restart happens with probability at most 9/10, so
// the expected number of restarts is bounded, but there is no worst-case bound.
func (s *Sampler) Uniform(n natural.Nat) natural.Nat {
	if n.IsZero() {
		panic("primes: uniform sampling requires n > 0")
	}

	bound := leadingDigits(n)
	result := make([]int, len(bound))

restart:
	for {
		result[0] = s.drawDigit(bound[0])
		tight := result[0] == bound[0] // the partial result equals the prefix of n

		for i := 1; i < len(bound); i++ {
			result[i] = s.drawDigit(natural.Radix - 1)
			if tight && result[i] > bound[i] {
				s.metrics.samplerRestarts.Inc()
				continue restart
			}
			tight = tight && result[i] == bound[i]
		}
		break
	}

	out := natural.New()
	for _, d := range result {
		out.PushDigit(d)
	}
	return out
}

// UniformRange returns a number uniformly distributed in [lo, hi]. Panics unless lo < hi.
func (s *Sampler) UniformRange(lo, hi natural.Nat) natural.Nat {
	if lo.Cmp(hi) >= 0 {
		panic(fmt.Sprintf("primes: empty sampling range [%s, %s]", lo, hi))
	}
	return s.Uniform(hi.Clone().Subtract(lo)).Add(lo)
}

// drawDigit returns an integer uniformly distributed in [0, hi].
func (s *Sampler) drawDigit(hi int) int {
	d := int(float64(hi+1) * s.src.Float64())
	return min(d, hi)
}

// leadingDigits returns the digits of n, most significant first.
func leadingDigits(n natural.Nat) []int {
	ds := make([]int, n.Len())
	c := n.Clone()
	for i := len(ds) - 1; i >= 0; i-- {
		ds[i] = c.PopDigit()
	}
	return ds
}
