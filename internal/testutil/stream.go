// Package testutil provides a deterministic byte-stream generator the
// module's gopter property tests seed from, so a failing property's seed
// reproduces exactly across runs instead of depending on math/rand's
// process-global state.
package testutil

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Stream is a deterministic keystream seeded from a uint64.
type Stream struct {
	cipher *chacha20.Cipher
}

// NewStream derives a fresh keystream from seed: the seed occupies the
// first 8 bytes of the cipher key (the rest zero), with an all-zero nonce.
func NewStream(seed uint64) *Stream {
	var key [chacha20.KeySize]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], make([]byte, chacha20.NonceSize))
	if err != nil {
		panic(err)
	}
	return &Stream{cipher: c}
}

// Bytes fills buf with the next len(buf) keystream bytes.
func (s *Stream) Bytes(buf []byte) {
	zero := make([]byte, len(buf))
	s.cipher.XORKeyStream(buf, zero)
}

func (s *Stream) Uint8() uint8 {
	var b [1]byte
	s.Bytes(b[:])
	return b[0]
}

func (s *Stream) Uint32() uint32 {
	var b [4]byte
	s.Bytes(b[:])
	return binary.LittleEndian.Uint32(b[:])
}

func (s *Stream) Uint64() uint64 {
	var b [8]byte
	s.Bytes(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

func (s *Stream) Bool() bool { return s.Uint8()&1 == 1 }

// Seed64 derives a gopter-compatible int64 test-parameter seed from a
// human-chosen uint64, so every property test in this module can be
// reproduced from one short integer recorded in a bug report.
func Seed64(from uint64) int64 {
	s := NewStream(from)
	return int64(s.Uint64())
}
