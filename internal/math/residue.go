// Constant time modular arithmetic based on the bigmod package from Go's internal stdlib, exported via
// filippo.io/bigmod. Conversions from and to natural.Nat are not constant time.

package math

import (
	"filippo.io/bigmod"
	"github.com/smartcontractkit/nnprime/natural"
)

// Residue is a value modulo a fixed Modulus. Residues of different moduli must not be combined.
type Residue = *residue

type residue struct {
	value   *bigmod.Nat
	modulus *Modulus
}

// NewResidue creates a new residue with the given modulus, initialized to zero.
func NewResidue(m *Modulus) Residue {
	return &residue{bigmod.NewNat().ExpandFor(&m.value), m}
}

// x.SetNat(n) sets x = n mod modulus, and returns x.
func (x *residue) SetNat(n natural.Nat) Residue {
	reduced, err := n.Clone().Mod(x.modulus.m)
	if err != nil {
		panic(err)
	}
	if _, err := x.value.SetBytes(reduced.Bytes(), &x.modulus.value); err != nil {
		panic("reduced value rejected by modulus " + x.modulus.String() + ": " + err.Error())
	}
	return x
}

// x.Exp(e) computes x = x^e (mod modulus), and returns x. e is big-endian; an empty e yields one.
func (x *residue) Exp(e []byte) Residue {
	x.value.Exp(x.value, e, &x.modulus.value)
	return x
}

// x.Multiply(y) computes x = x * y (mod modulus), and returns x.
func (x *residue) Multiply(y Residue) Residue {
	x.value.Mul(y.value, &x.modulus.value)
	return x
}

func (x *residue) IsOne() bool {
	return x.value.IsOne() == 1
}

func (x *residue) Equal(y Residue) bool {
	return x.value.Equal(y.value) == 1
}

// Nat returns the value of x as a natural number in [0, modulus).
func (x *residue) Nat() natural.Nat {
	return natural.New().SetBytes(x.value.Bytes(&x.modulus.value))
}

func (x *residue) String() string {
	return x.Nat().String()
}
