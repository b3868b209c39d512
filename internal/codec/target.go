package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

type target struct {
	buffer []byte
}

func (t *target) Written() int {
	return len(t.buffer)
}

// Bytes returns the bytes written so far. The returned slice aliases the target's buffer.
func (t *target) Bytes() []byte {
	return t.buffer
}

// Marshals the given object into this target. Panics raised while marshaling are recovered and returned as errors.
// Use target.Write(...) to let them propagate instead.
func (t *target) Marshal(object Marshaler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered panic during marshaling: %v", r)
		}
	}()

	t.Write(object)
	return nil
}

// Write the given object into this target. The object must not be nil.
func (t *target) Write(object Marshaler) {
	if object == nil {
		panic("Write called with nil object")
	}
	object.MarshalTo(t)
}

// WriteInt writes value as a 32-bit signed integer in BigEndian byte order, matching source.ReadInt.
func (t *target) WriteInt(value int) {
	if value > math.MaxInt32 || value < math.MinInt32 {
		panic(fmt.Sprintf("WriteInt called with value %d, which is out of range of int32", value))
	}
	t.buffer = binary.BigEndian.AppendUint32(t.buffer, uint32(int32(value)))
}

func (t *target) WriteBytes(value []byte) {
	t.buffer = append(t.buffer, value...)
}

func (t *target) WriteLengthPrefixedBytes(value []byte) {
	if value == nil {
		t.WriteInt(-1)
		return
	}
	t.WriteInt(len(value))
	t.WriteBytes(value)
}
