package primes

import "github.com/smartcontractkit/nnprime/natural"

// ReduceGCD sets n to gcd(n, m) using Euclid's algorithm and clears m. Values are moved between n, m and a scratch
// number, never copied. Panics if n and m are the same Nat.
func ReduceGCD(n, m natural.Nat) {
	if n == m {
		panic("primes: ReduceGCD requires distinct arguments")
	}
	scratch := natural.New()
	for !m.IsZero() {
		mustMod(n, m)           // n <-- n mod m
		scratch.TransferFrom(n) // (n, m) <-- (m, n mod m)
		n.TransferFrom(m)
		m.TransferFrom(scratch)
	}
}

// GCD returns gcd(a, b) as a new Nat, leaving a and b unchanged.
func GCD(a, b natural.Nat) natural.Nat {
	n, m := a.Clone(), b.Clone()
	ReduceGCD(n, m)
	return n
}

// mustMod computes n = n mod m for a divisor known to be non-zero.
func mustMod(n, m natural.Nat) {
	if _, err := n.Mod(m); err != nil {
		panic(err)
	}
}
