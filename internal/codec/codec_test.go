package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	a, b []byte
}

func (p *pair) MarshalTo(target Target) {
	target.WriteLengthPrefixedBytes(p.a)
	target.WriteLengthPrefixedBytes(p.b)
}

func (p *pair) UnmarshalFrom(source Source) *pair {
	p.a = source.ReadLengthPrefixedBytes()
	p.b = source.ReadLengthPrefixedBytes()
	return p
}

func TestRoundTrip(t *testing.T) {
	data, err := Marshal(&pair{nil, []byte{1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0, 0, 0, 3, 1, 2, 3}, data)

	p, err := Unmarshal[*pair](data, &pair{})
	require.NoError(t, err)
	require.Nil(t, p.a)
	require.Equal(t, []byte{1, 2, 3}, p.b)
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := Unmarshal[*pair]([]byte{0, 0, 0, 5, 1}, &pair{})
	require.ErrorContains(t, err, "recovered panic")

	_, err = Unmarshal[*pair]([]byte{0, 0, 0, 0, 0, 0, 0, 0, 7}, &pair{})
	require.ErrorContains(t, err, "1 bytes remaining")

	_, err = Unmarshal[*pair]([]byte{0xff, 0xff, 0xff, 0xfe}, &pair{})
	require.Error(t, err)
}

func TestWriteIntRange(t *testing.T) {
	tgt := &target{}
	require.Error(t, tgt.Marshal(marshalerFunc(func(tg Target) { tg.WriteInt(1 << 40) })))
	require.Zero(t, tgt.Written())
}

type marshalerFunc func(Target)

func (f marshalerFunc) MarshalTo(tg Target) { f(tg) }
