package codec

import "fmt"

// Length-prefixed binary encoding used for natural numbers and the values built from them.
// Use codec.Marshal(...) and codec.Unmarshal(...) at the API boundary; both recover from panics raised by the
// lower-level Write*/Read* calls and report them as errors.

const IntSize = 4

type Marshaler interface {
	MarshalTo(target Target)
}

type Unmarshaler[T any] interface {
	UnmarshalFrom(source Source) T
}

type Codec[T any] interface {
	Marshaler
	Unmarshaler[T]
}

type Target = *target
type Source = *source

// Marshals the given (non-nil) object into a byte slice.
// Panics during marshaling are recovered and returned as errors.
func Marshal(object Marshaler) ([]byte, error) {
	target := &target{}
	if err := target.Marshal(object); err != nil {
		return nil, err
	}
	return target.buffer, nil
}

// Unmarshal the given byte slice into a value of type T using the given unmarshaler. Panics during unmarshaling are
// recovered and returned as errors. All input bytes must be consumed, otherwise an error is returned.
func Unmarshal[T any](data []byte, unmarshaler Unmarshaler[T]) (result T, err error) {
	src := &source{data}
	result, err = UnmarshalFromSource(src, unmarshaler)
	if err != nil {
		return result, err
	}
	if src.Available() > 0 {
		var zero T
		return zero, fmt.Errorf(
			"unmarshaling did not consume all bytes, %d bytes remaining", src.Available(),
		)
	}
	return result, nil
}

// Read the next object of type T from the given source. Panics during unmarshaling are recovered and returned as
// errors. Data remaining in the source afterwards is not considered an error.
func UnmarshalFromSource[T any](source Source, obj Unmarshaler[T]) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered panic while unmarshaling: %v", r)
		}
	}()
	return obj.UnmarshalFrom(source), nil
}
