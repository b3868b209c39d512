package primes

import (
	"fmt"

	"github.com/smartcontractkit/nnprime/natural"
)

// IsWitness reports whether w proves n composite: either w² mod n = 1 (a square root of unity other than ±1, which
// only exists modulo composites) or w^(n-1) mod n ≠ 1 (n fails Fermat's little theorem). w and n are not modified.
// Panics unless n > 2 and 1 < w < n - 1.
func IsWitness(w, n natural.Nat) bool {
	return isWitness(SquareAndMultiply{}, w, n)
}

func isWitness(exp Exponentiator, w, n natural.Nat) bool {
	if n.CmpUint64(2) <= 0 {
		panic(fmt.Sprintf("primes: witness test requires n > 2, got %s", n))
	}
	nMinusOne := n.Clone().Decrement()
	if w.CmpUint64(1) <= 0 || w.Cmp(nMinusOne) >= 0 {
		panic(fmt.Sprintf("primes: witness candidate %s outside (1, %s)", w, nMinusOne))
	}

	square := w.Clone()
	exp.PowerMod(square, two, n)
	if square.IsOne() {
		return true
	}

	fermat := w.Clone()
	exp.PowerMod(fermat, nMinusOne, n)
	return !fermat.IsOne()
}
