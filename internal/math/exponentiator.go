package math

import (
	"fmt"

	"github.com/smartcontractkit/nnprime/natural"
	"github.com/smartcontractkit/nnprime/primes"
)

var _ primes.Exponentiator = &Exponentiator{}

// Exponentiator implements primes.Exponentiator with Montgomery exponentiation for odd moduli. Even moduli are
// delegated to primes.PowerMod. The most recently used modulus is cached, as primality tests exponentiate many times
// modulo the same number. Not safe for concurrent use.
type Exponentiator struct {
	last *Modulus
}

func NewExponentiator() *Exponentiator {
	return &Exponentiator{}
}

func (e *Exponentiator) PowerMod(n, p, m natural.Nat) {
	if m.CmpUint64(1) <= 0 {
		panic(fmt.Sprintf("modulus must be greater than 1, got %s", m))
	}
	if m.IsEven() {
		primes.PowerMod(n, p, m)
		return
	}

	if e.last == nil || !e.last.Matches(m) {
		modulus, err := NewModulus(m)
		if err != nil {
			panic(err)
		}
		e.last = modulus
	}

	result := NewResidue(e.last).SetNat(n).Exp(p.Bytes())
	n.Set(result.Nat())
}
