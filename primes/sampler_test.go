package primes

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smartcontractkit/nnprime/internal/testimplementations"
	"github.com/smartcontractkit/nnprime/internal/testimplementations/testhelpers"
	"github.com/smartcontractkit/nnprime/natural"
	"github.com/smartcontractkit/nnprime/rng/unsaferand"
	"github.com/stretchr/testify/require"
)

func TestUniformIsApproximatelyUniform(t *testing.T) {
	const bound = 17
	const samples = 100000

	sampler := NewSampler(unsaferand.New(t.Name()), nil)
	n := natural.NewFromUint64(bound)
	counts := make([]int, bound+1)

	for i := 0; i < samples; i++ {
		v, err := sampler.Uniform(n).Int()
		require.NoError(t, err)
		require.LessOrEqual(t, v, bound)
		counts[v]++
	}
	testhelpers.RequireNat(t, "17", n)

	expected := float64(samples) / float64(bound+1)
	for i, c := range counts {
		require.InDelta(t, expected, float64(c), 0.1*expected, "count[%d] = %d", i, c)
	}
}

func TestUniformStaysInRange(t *testing.T) {
	sampler := NewSampler(unsaferand.New(t.Name()), nil)
	for _, s := range []string{"1", "9", "10", "11", "100", "1000000000000000000000000000007"} {
		n := testhelpers.Nat(t, s)
		for i := 0; i < 500; i++ {
			require.LessOrEqual(t, sampler.Uniform(n).Cmp(n), 0)
		}
		testhelpers.RequireNat(t, s, n)
	}
}

func TestUniformSingleDigit(t *testing.T) {
	sampler := NewSampler(testimplementations.NewScriptedSource(0.0, 0.5, 0.999), nil)
	n := natural.NewFromUint64(7)
	testhelpers.RequireNat(t, "0", sampler.Uniform(n))
	testhelpers.RequireNat(t, "4", sampler.Uniform(n))
	testhelpers.RequireNat(t, "7", sampler.Uniform(n))
}

func TestUniformRestartsFromLeadingDigit(t *testing.T) {
	// leading digit 1 (tight), then 8 > 7 rejects 18; the restart draws leading digit 0 and then 9
	src := testimplementations.NewScriptedSource(0.99, 0.85, 0.2, 0.95)
	registry := prometheus.NewRegistry()
	sampler := NewSampler(src, registry)

	testhelpers.RequireNat(t, "9", sampler.Uniform(natural.NewFromUint64(17)))
	require.Equal(t, 4, src.Draws)
	require.Equal(t, 1.0, testutil.ToFloat64(sampler.metrics.samplerRestarts))
}

func TestUniformPreconditions(t *testing.T) {
	sampler := NewSampler(unsaferand.New(t.Name()), nil)
	require.Panics(t, func() { sampler.Uniform(natural.New()) })
	require.Panics(t, func() { sampler.UniformRange(natural.NewFromUint64(5), natural.NewFromUint64(5)) })
	require.Panics(t, func() { NewSampler(nil, nil) })
}

func TestUniformRange(t *testing.T) {
	sampler := NewSampler(unsaferand.New(t.Name()), nil)
	lo, hi := natural.NewFromUint64(2), natural.NewFromUint64(5)
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		v := sampler.UniformRange(lo, hi)
		require.GreaterOrEqual(t, v.Cmp(lo), 0)
		require.LessOrEqual(t, v.Cmp(hi), 0)
		seen[v.String()] = true
	}
	require.Len(t, seen, 4)
}
