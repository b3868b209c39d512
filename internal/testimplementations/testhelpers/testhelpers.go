package testhelpers

import (
	"math/big"
	"testing"

	"github.com/smartcontractkit/nnprime/natural"
	"github.com/stretchr/testify/require"
)

// Nat parses a decimal test value, failing the test on error.
func Nat(t *testing.T, value string) natural.Nat {
	t.Helper()
	n, err := natural.NewFromString(value)
	require.NoError(t, err)
	return n
}

// RequireNat asserts that n has the given decimal value.
func RequireNat(t *testing.T, expected string, n natural.Nat) {
	t.Helper()
	require.Equal(t, expected, n.String())
}

// IsPrimeByTrialDivision is the ground truth for small n.
func IsPrimeByTrialDivision(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// IsFermatLiarBase2 reports whether 2^(n-1) mod n = 1, computed with math/big.
func IsFermatLiarBase2(n uint64) bool {
	b := new(big.Int).SetUint64(n)
	e := new(big.Int).Sub(b, big.NewInt(1))
	return new(big.Int).Exp(big.NewInt(2), e, b).Cmp(big.NewInt(1)) == 0
}
