package primes

import (
	"fmt"

	"github.com/smartcontractkit/nnprime/natural"
)

// Exponentiator computes modular powers. Implementations update n to n^p mod m, must not modify p or m, and panic
// unless m > 1.
type Exponentiator interface {
	PowerMod(n, p, m natural.Nat)
}

// SquareAndMultiply is the Exponentiator based on PowerMod.
type SquareAndMultiply struct{}

var _ Exponentiator = SquareAndMultiply{}

func (SquareAndMultiply) PowerMod(n, p, m natural.Nat) {
	PowerMod(n, p, m)
}

var two = natural.NewFromUint64(2)

// PowerMod updates n to n^p mod m. p and m are not modified. Panics unless m > 1, or if n and m are the same Nat.
//
// The exponent is halved repeatedly, recording whether each intermediate value was odd. Replaying those parities
// from the most significant end squares the running result, multiplying by the base once more for odd steps. Every
// product is reduced modulo m straight away, so intermediate values stay below m².
func PowerMod(n, p, m natural.Nat) {
	requireModulus(m)
	if n == m {
		panic("primes: PowerMod requires distinct base and modulus")
	}

	if p.IsZero() {
		n.SetUint64(1)
		return
	}

	var odd []bool
	q := p.Clone()
	for q.CmpUint64(1) > 0 {
		odd = append(odd, !q.IsEven())
		if _, err := q.Divide(two); err != nil {
			panic(err)
		}
	}

	mustMod(n, m)
	base := n.Clone()
	for i := len(odd) - 1; i >= 0; i-- {
		n.Multiply(n)
		mustMod(n, m)
		if odd[i] {
			n.Multiply(base)
			mustMod(n, m)
		}
	}
}

func requireModulus(m natural.Nat) {
	if m.CmpUint64(1) <= 0 {
		panic(fmt.Sprintf("primes: modulus must be greater than 1, got %s", m))
	}
}
