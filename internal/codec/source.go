package codec

import (
	"encoding/binary"
	"fmt"
)

// Internal representation for a source of bytes to be unmarshaled. The buffer slice is modified during reading.
type source struct {
	buffer []byte
}

// NewSource wraps data for reading. The slice is not copied.
func NewSource(data []byte) Source {
	return &source{data}
}

// Available returns the number of bytes that are still available for reading from the source.
func (s *source) Available() int {
	return len(s.buffer)
}

// ReadInt reads a 32-bit signed integer from the source in BigEndian byte order.
// It panics if not enough bytes are available in the source.
func (s *source) ReadInt() int {
	if len(s.buffer) < IntSize {
		panic(fmt.Sprintf("ReadInt called, %d bytes required, but only %d bytes available", IntSize, len(s.buffer)))
	}
	value := int(int32(binary.BigEndian.Uint32(s.buffer)))
	s.buffer = s.buffer[IntSize:]
	return value
}

// ReadBytes reads a specified number of bytes from the source without copying them.
func (s *source) ReadBytes(length int) []byte {
	if length < 0 {
		panic(fmt.Sprintf("ReadBytes called with negative length %d", length))
	}
	if len(s.buffer) < length {
		panic(fmt.Sprintf("ReadBytes called with length %d, but only %d bytes available", length, len(s.buffer)))
	}
	value := s.buffer[:length:length] // limit cap(value) to prevent overwriting the source's buffer on append
	s.buffer = s.buffer[length:]
	return value
}

// ReadLengthPrefixedBytes reads a byte slice preceded by its length (see ReadInt). A length of -1 indicates a nil
// slice, any other negative length panics.
func (s *source) ReadLengthPrefixedBytes() []byte {
	length := s.ReadInt()
	if length == -1 {
		return nil
	}
	if length < 0 {
		panic("ReadLengthPrefixedBytes call failed, negative length field")
	}
	return s.ReadBytes(length)
}
