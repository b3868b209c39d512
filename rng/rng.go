// Package rng provides the sources of uniformly distributed floating point values consumed by package primes.
// None of the sources in this package is safe for concurrent use unless wrapped with Locked.
package rng

import (
	"crypto/cipher"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/smartcontractkit/nnprime/internal/xof"
	"golang.org/x/crypto/chacha20"
)

// Source produces float64 values uniformly distributed in [0, 1).
// *math/rand.Rand satisfies this interface.
type Source interface {
	Float64() float64
}

// Locked wraps src so that concurrent calls to Float64 are serialized.
func Locked(src Source) Source {
	if l, ok := src.(*locked); ok {
		return l
	}
	return &locked{src: src}
}

type locked struct {
	mu  sync.Mutex
	src Source
}

func (l *locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// readerSource turns a byte stream into floats by taking the top 53 bits of each big-endian 8-byte word.
type readerSource struct {
	r   io.Reader
	buf [8]byte
}

// FromReader returns a Source that consumes 8 bytes from r per value. Float64 panics if r fails, so r must be a
// stream that cannot run dry (a keystream, an XOF, or the system CSPRNG).
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

func (s *readerSource) Float64() float64 {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		panic(fmt.Sprintf("rng: reading randomness failed: %v", err))
	}
	return float64(binary.BigEndian.Uint64(s.buf[:])>>11) / (1 << 53)
}

// NewSystem returns a Source backed by crypto/rand.
func NewSystem() Source {
	return FromReader(crand.Reader)
}

// NewXOF returns a deterministic Source that squeezes a SHAKE256 stream bound to the given seed.
func NewXOF(seed string) Source {
	h := xof.New("nnprime/rng/xof")
	h.WriteString(seed)
	return FromReader(h)
}

// NewChaCha20 returns a deterministic Source based on the ChaCha20 keystream. Key and nonce are derived from seed.
func NewChaCha20(seed string) Source {
	h := xof.New("nnprime/rng/chacha20")
	h.WriteString(seed)
	key := h.Digest(chacha20.KeySize + chacha20.NonceSize)

	stream, err := chacha20.NewUnauthenticatedCipher(key[:chacha20.KeySize], key[chacha20.KeySize:])
	if err != nil {
		panic(fmt.Sprintf("rng: chacha20 setup failed: %v", err))
	}
	return FromReader(keystream{stream})
}

type keystream struct {
	cipher.Stream
}

func (k keystream) Read(p []byte) (int, error) {
	clear(p)
	k.XORKeyStream(p, p)
	return len(p), nil
}
