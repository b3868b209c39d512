// Arbitrary-precision natural numbers stored as base-10 digits. The representation makes digit-level access (PopDigit,
// PushDigit) cheap, which the sampling and parity code in package primes relies on.

package natural

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Radix is the positional base of the digit representation.
const Radix = 10

var (
	ErrMalformed      = errors.New("malformed natural number")
	ErrNegative       = errors.New("negative value is not a natural number")
	ErrOverflow       = errors.New("natural number exceeds native integer range")
	ErrDivisionByZero = errors.New("division by zero")
)

// Nat is a non-negative integer of unbounded magnitude. Arithmetic methods update the receiver in place and return
// it, so calls can be chained: n.Multiply(m).Increment(). Use Clone to obtain an independent copy.
// A Nat is not safe for concurrent modification.
type Nat = *nat

type nat struct {
	d digits
}

// New returns a Nat with value zero.
func New() Nat {
	return &nat{}
}

func NewFromUint64(v uint64) Nat {
	return New().SetUint64(v)
}

// NewFromInt fails with ErrNegative for v < 0.
func NewFromInt(v int) (Nat, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegative, v)
	}
	return NewFromUint64(uint64(v)), nil
}

// NewFromString parses a decimal string. Leading zeros are accepted and dropped; signs, whitespace and any other
// non-digit characters are rejected.
func NewFromString(s string) (Nat, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformed)
	}
	if s[0] == '-' {
		return nil, fmt.Errorf("%w: %q", ErrNegative, s)
	}

	d := make(digits, len(s))
	for i := 0; i < len(s); i++ {
		c := s[len(s)-1-i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: invalid character %q in %q", ErrMalformed, c, s)
		}
		d[i] = c - '0'
	}
	return &nat{d.norm()}, nil
}

// Non-validating variant of NewFromString, to be used for testing purposes and initialization only.
// Panics on invalid input.
func MustFromString(s string) Nat {
	n, err := NewFromString(s)
	if err != nil {
		panic("invalid natural number: " + s + ", error: " + err.Error())
	}
	return n
}

// NewFromHex parses a 0x-prefixed hexadecimal string. Odd digit counts are allowed.
func NewFromHex(s string) (Nat, error) {
	if len(s) < 2 || !strings.EqualFold(s[:2], "0x") {
		return nil, fmt.Errorf("%w: %q lacks 0x prefix", ErrMalformed, s)
	}
	body := s[2:]
	if body == "" {
		return nil, fmt.Errorf("%w: %q has no digits", ErrMalformed, s)
	}
	if len(body)%2 == 1 {
		body = "0" + body
	}
	b, err := hexutil.Decode("0x" + body)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	return NewFromBigInt(new(big.Int).SetBytes(b))
}

func NewFromBigInt(b *big.Int) (Nat, error) {
	if b.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegative, b)
	}
	return NewFromString(b.String())
}

// x.Set(y) sets x = y and returns x. x and y can be modified independently afterwards.
func (x *nat) Set(y Nat) Nat {
	if x != y {
		x.d = append(x.d[:0], y.d...)
	}
	return x
}

func (x *nat) SetUint64(v uint64) Nat {
	x.d = x.d[:0]
	for v > 0 {
		x.d = append(x.d, byte(v%Radix))
		v /= Radix
	}
	return x
}

// Clear sets x to zero.
func (x *nat) Clear() Nat {
	x.d = x.d[:0]
	return x
}

// Returns an independent copy of x.
func (x *nat) Clone() Nat {
	return New().Set(x)
}

// x.TransferFrom(y) moves the value of y into x and clears y. No digits are copied.
func (x *nat) TransferFrom(y Nat) Nat {
	if x == y {
		return x
	}
	x.d, y.d = y.d, nil
	return x
}

func (x *nat) IsZero() bool {
	return len(x.d) == 0
}

func (x *nat) IsOne() bool {
	return len(x.d) == 1 && x.d[0] == 1
}

// IsEven reports whether x mod 2 = 0, judged by the lowest digit.
func (x *nat) IsEven() bool {
	return len(x.d) == 0 || x.d[0]%2 == 0
}

// Len returns the number of decimal digits of x. Zero has length 0.
func (x *nat) Len() int {
	return len(x.d)
}

// Cmp returns -1, 0 or +1 depending on whether x < y, x = y or x > y.
func (x *nat) Cmp(y Nat) int {
	return x.d.cmp(y.d)
}

func (x *nat) CmpUint64(v uint64) int {
	var y nat
	return x.Cmp(y.SetUint64(v))
}

func (x *nat) Equal(y Nat) bool {
	return x.Cmp(y) == 0
}

// String returns the canonical decimal representation of x.
func (x *nat) String() string {
	if len(x.d) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.Grow(len(x.d))
	for i := len(x.d) - 1; i >= 0; i-- {
		sb.WriteByte('0' + x.d[i])
	}
	return sb.String()
}

// Hex returns the 0x-prefixed hexadecimal representation of x.
func (x *nat) Hex() string {
	return hexutil.EncodeBig(x.BigInt())
}

// Uint64 returns the value of x, or ErrOverflow if x does not fit in an uint64.
func (x *nat) Uint64() (uint64, error) {
	var v uint64
	for i := len(x.d) - 1; i >= 0; i-- {
		digit := uint64(x.d[i])
		if v > (math.MaxUint64-digit)/Radix {
			return 0, fmt.Errorf("%w: %s", ErrOverflow, x)
		}
		v = v*Radix + digit
	}
	return v, nil
}

// Int returns the value of x, or ErrOverflow if x does not fit in an int.
func (x *nat) Int() (int, error) {
	v, err := x.Uint64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, x)
	}
	return int(v), nil
}

func (x *nat) BigInt() *big.Int {
	b, ok := new(big.Int).SetString(x.String(), 10)
	if !ok {
		panic("unreachable: canonical decimal string rejected by math/big: " + x.String())
	}
	return b
}
