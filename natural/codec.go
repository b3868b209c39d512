package natural

import (
	"fmt"
	"math/big"

	"github.com/smartcontractkit/nnprime/internal/codec"
)

var _ codec.Codec[*nat] = &nat{}

// Returns the big-endian magnitude of x without leading zero bytes. Zero encodes as an empty slice.
func (x *nat) Bytes() []byte {
	b := x.BigInt().Bytes()
	if b == nil {
		b = []byte{}
	}
	return b
}

// x.SetBytes(b) sets x to the natural number encoded by the big-endian bytes b, and returns x.
func (x *nat) SetBytes(b []byte) Nat {
	y, err := NewFromBigInt(new(big.Int).SetBytes(b))
	if err != nil {
		panic("unreachable: big.Int.SetBytes produced a negative value")
	}
	return x.TransferFrom(y)
}

func (x *nat) MarshalTo(target codec.Target) {
	target.WriteLengthPrefixedBytes(x.Bytes())
}

// UnmarshalFrom reads a value written by MarshalTo into x. Panics on non-canonical input (nil marker or leading zero
// bytes); use UnmarshalBinary for an error-returning variant.
func (x *nat) UnmarshalFrom(source codec.Source) Nat {
	b := source.ReadLengthPrefixedBytes()
	if b == nil {
		panic("natural: nil encoding")
	}
	if len(b) > 0 && b[0] == 0 {
		panic(fmt.Sprintf("natural: non-canonical encoding with %d-byte magnitude and leading zero byte", len(b)))
	}
	return x.SetBytes(b)
}

func (x *nat) MarshalBinary() ([]byte, error) {
	return codec.Marshal(x)
}

func (x *nat) UnmarshalBinary(data []byte) error {
	_, err := codec.Unmarshal[Nat](data, x)
	return err
}
