package math

import (
	"testing"

	"github.com/smartcontractkit/nnprime/natural"
	"github.com/smartcontractkit/nnprime/primes"
	"github.com/smartcontractkit/nnprime/rng/unsaferand"
	"github.com/stretchr/testify/require"
)

func TestNewModulus(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 18} {
		_, err := NewModulus(natural.NewFromUint64(v))
		require.Error(t, err, v)
	}

	m, err := NewModulus(natural.MustFromString("340282366920938463463374607431768211457"))
	require.NoError(t, err)
	require.Equal(t, 17, m.Size())
	require.True(t, m.Matches(natural.MustFromString("340282366920938463463374607431768211457")))
}

func TestResidue(t *testing.T) {
	m, err := NewModulus(natural.NewFromUint64(19))
	require.NoError(t, err)

	x := NewResidue(m).SetNat(natural.NewFromUint64(17 + 19*5))
	require.Equal(t, "17", x.String())
	require.True(t, x.Exp(natural.NewFromUint64(18).Bytes()).IsOne())

	y := NewResidue(m).SetNat(natural.NewFromUint64(4))
	z := NewResidue(m).SetNat(natural.NewFromUint64(5))
	require.Equal(t, "1", y.Multiply(z).String())
	require.True(t, y.Equal(NewResidue(m).SetNat(natural.NewFromUint64(1))))

	require.True(t, NewResidue(m).SetNat(natural.NewFromUint64(7)).Exp(nil).IsOne())
}

func TestExponentiatorMatchesSquareAndMultiply(t *testing.T) {
	e := NewExponentiator()
	for n := uint64(0); n < 25; n++ {
		for p := uint64(0); p < 25; p++ {
			for m := uint64(2); m < 25; m++ {
				expected := natural.NewFromUint64(n)
				primes.PowerMod(expected, natural.NewFromUint64(p), natural.NewFromUint64(m))

				actual := natural.NewFromUint64(n)
				e.PowerMod(actual, natural.NewFromUint64(p), natural.NewFromUint64(m))
				require.True(t, expected.Equal(actual), "%d^%d mod %d: expected %s, got %s", n, p, m, expected, actual)
			}
		}
	}
}

func TestExponentiatorLargeOperands(t *testing.T) {
	rand := unsaferand.New(t.Name())
	sampler := primes.NewSampler(rand, nil)
	e := NewExponentiator()

	bound := natural.NewFromUint64(10).Power(60)
	for i := 0; i < 20; i++ {
		n := sampler.Uniform(bound)
		p := sampler.Uniform(bound)
		m := sampler.Uniform(bound).Add(natural.NewFromUint64(2))

		expected := n.Clone()
		primes.PowerMod(expected, p, m)
		actual := n.Clone()
		e.PowerMod(actual, p, m)
		require.True(t, expected.Equal(actual))
	}
}

func TestTesterWithMontgomeryBackend(t *testing.T) {
	tester := primes.NewTester(unsaferand.New(t.Name()), primes.TesterConfig{
		Policy:        primes.AllTrialsVerdict,
		Exponentiator: NewExponentiator(),
	}, nil, nil)

	require.True(t, tester.IsPrimeMultiWitness(natural.NewFromUint64(54323)))
	require.False(t, tester.IsPrimeMultiWitness(natural.NewFromUint64(54321)))
	require.True(t, tester.IsPrimeDeterministicWitness(natural.NewFromUint64(341)))
}
