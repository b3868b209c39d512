package math

import (
	"fmt"

	"filippo.io/bigmod"
	"github.com/smartcontractkit/nnprime/natural"
)

// Modulus is an odd modulus m > 1 prepared for Montgomery arithmetic.
type Modulus struct {
	value bigmod.Modulus
	m     natural.Nat
}

// NewModulus returns an error if m is even or not greater than one.
func NewModulus(m natural.Nat) (*Modulus, error) {
	if m.CmpUint64(1) <= 0 || m.IsEven() {
		return nil, fmt.Errorf("invalid modulus %s, expected an odd number greater than 1", m)
	}
	value, err := bigmod.NewModulus(m.Bytes())
	if err != nil {
		return nil, fmt.Errorf("invalid modulus %s: %w", m, err)
	}
	return &Modulus{*value, m.Clone()}, nil
}

// Matches reports whether the modulus has the value n.
func (m *Modulus) Matches(n natural.Nat) bool {
	return m.m.Equal(n)
}

// Size returns the size of the modulus in bytes.
func (m *Modulus) Size() int {
	return (&m.value).Size()
}

func (m *Modulus) String() string {
	return m.m.String()
}
