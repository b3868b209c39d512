package unsaferand

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"hash/fnv"
	mrand "math/rand"
	"time"

	"github.com/smartcontractkit/nnprime/rng"
)

// UnsafeRand is a general-purpose pseudo-random generator based on math/rand.Rand.
// The generated sequence is not cryptographically secure. The underlying math.Rand is not safe for concurrent use;
// wrap it with rng.Locked when sharing it between goroutines.
type UnsafeRand struct {
	*mrand.Rand
}

var _ rng.Source = &UnsafeRand{}

// Initializes a new UnsafeRand that produces a deterministic sequence based on the given seed argument(s).
// Deterministic behavior depends on the fmt.Sprintf("%#v", seedArgs...) representation of the passed arguments.
// Map iteration order is not guaranteed, so passing a map as a seed argument may lead to non-deterministic behavior.
func New(seedArgs ...any) *UnsafeRand {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%#v", seedArgs)

	seed := int64(h.Sum64())
	return &UnsafeRand{mrand.New(mrand.NewSource(seed))}
}

// Initializes a new UnsafeRand that produces non-deterministic randomness.
func NewNondeterministic() *UnsafeRand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return &UnsafeRand{mrand.New(mrand.NewSource(time.Now().UnixNano()))}
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	return &UnsafeRand{mrand.New(mrand.NewSource(seed))}
}
