package testimplementations

import "github.com/smartcontractkit/nnprime/rng"

// ScriptedSource is a rng.Source that replays a fixed sequence of values, starting over at the end.
// Used to steer sampling towards specific witness candidates in tests.
type ScriptedSource struct {
	values []float64
	next   int
	Draws  int
}

var _ rng.Source = &ScriptedSource{}

func NewScriptedSource(values ...float64) *ScriptedSource {
	if len(values) == 0 {
		panic("scripted source requires at least one value")
	}
	for _, v := range values {
		if v < 0 || v >= 1 {
			panic("scripted source values must be in [0, 1)")
		}
	}
	return &ScriptedSource{values: values}
}

func (s *ScriptedSource) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	s.Draws++
	return v
}
