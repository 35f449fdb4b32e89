package service

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	mathrand "math/rand/v2"
	"sync"
)

// readerRandomSource samples uniform integers from a byte stream by rejection.
type readerRandomSource struct {
	mu     sync.Mutex
	reader io.Reader
}

// NewCryptoRandomSource returns a RandomSource backed by crypto/rand.
func NewCryptoRandomSource() RandomSource {
	return &readerRandomSource{reader: cryptorand.Reader}
}

// NewSeededRandomSource returns a deterministic RandomSource backed by a ChaCha8
// stream. The same seed always yields the same sequence of draws.
func NewSeededRandomSource(seed uint64) RandomSource {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return &readerRandomSource{reader: mathrand.NewChaCha8(key)}
}

// Int returns a uniform value in [0, max).
func (r *readerRandomSource) Int(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, fmt.Errorf("random bound must be positive")
	}

	bitLen := max.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	// mask the unused high bits of the first byte so a draw lands below 2^bitLen
	topBits := uint(bitLen % 8)
	if topBits == 0 {
		topBits = 8
	}
	mask := byte(0xFF >> (8 - topBits))

	r.mu.Lock()
	defer r.mu.Unlock()

	n := new(big.Int)
	for {
		if _, err := io.ReadFull(r.reader, buf); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[0] &= mask
		n.SetBytes(buf)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}
