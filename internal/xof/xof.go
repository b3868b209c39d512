package xof

import (
	"crypto/sha3"
	"encoding/binary"
	"io"
)

// SHAKE256-based extendable output function with a domain separation tag and an unambiguous encoding of the
// written parameters. Used to expand a short seed into an unbounded deterministic byte stream.

var _ io.Reader = &xof{}

type xof struct {
	dst        string
	shake      *sha3.SHAKE
	readCalled bool
}

type argType byte

const (
	_ argType = iota
	argTypeNil
	argTypeInt
	argTypeBytes
	argTypeString
)

// New initializes an XOF and absorbs the given domain separation tag.
func New(dst string) *xof {
	h := &xof{dst, sha3.NewSHAKE256(), false}
	h.WriteString(h.dst)
	return h
}

func (h *xof) writeArgType(t argType) {
	h.requireWritable()
	_, _ = h.shake.Write([]byte{byte(t)})
}

func (h *xof) requireWritable() {
	if h.readCalled {
		panic("xof: write after Read")
	}
}

// Writes an integer to the XOF's internal state. Panics after Read has been called.
func (h *xof) WriteInt(value int) {
	h.writeArgType(argTypeInt)
	_ = binary.Write(h.shake, binary.BigEndian, uint64(value))
}

// Writes a length-prefixed byte slice to the XOF's internal state. nil and empty slices are distinguished.
// Panics after Read has been called.
func (h *xof) WriteBytes(data []byte) {
	if data == nil {
		h.writeArgType(argTypeNil)
		return
	}
	h.writeArgType(argTypeBytes)
	_ = binary.Write(h.shake, binary.BigEndian, uint64(len(data)))
	_, _ = h.shake.Write(data)
}

// Writes a length-prefixed string to the XOF's internal state. Panics after Read has been called.
func (h *xof) WriteString(str string) {
	h.writeArgType(argTypeString)
	_ = binary.Write(h.shake, binary.BigEndian, uint64(len(str)))
	_, _ = h.shake.Write([]byte(str))
}

// Read squeezes output from the XOF. Repeated calls continue the stream; it never returns an error.
func (h *xof) Read(p []byte) (int, error) {
	h.readCalled = true
	return h.shake.Read(p)
}

// Digest squeezes length bytes of output. Equivalent to Read into a fresh slice.
func (h *xof) Digest(length int) []byte {
	out := make([]byte, length)
	_, _ = h.Read(out)
	return out
}
