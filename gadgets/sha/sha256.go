// Package sha implements the SHA-family hash gadgets as consumers of the
// core circuit-building layer (spec §6): each round is expressed purely in
// terms of uint32/uint64 AND/OR/XOR/CMPLMNT/ADDMOD/ROTL/ROTR/SHR circuit
// operations, so every constraint it emits is already covered by the
// Rank1Ops templates in package r1cs. SHA-1 (Compress160), SHA-256 and
// the SHA-512 family have their own compression functions; SHA-224 reuses
// the SHA-256 compression with its own initial hash value.
package sha

import (
	"github.com/jancarlsson/snarkfront/circuit"
)

// sha256K are the FIPS 180-4 round constants.
var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sha256H0 is the SHA-256 initial hash value (FIPS 180-4 §5.3.3).
var sha256H0 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// Block256 is a single 512-bit message block, expressed as sixteen
// circuit-level big-endian uint32 words.
type Block256 = [16]circuit.Word[uint32]

// Digest256 is a SHA-256 (or SHA-224-truncated) output: eight big-endian
// uint32 words.
type Digest256 = [8]circuit.Word[uint32]

// Compress256 runs the SHA-256 compression function over h with one
// message block, returning the updated chaining value (FIPS 180-4 §6.2.2).
func Compress256(b *circuit.Builder, h Digest256, block Block256) Digest256 {
	var w [64]circuit.Word[uint32]
	copy(w[:16], block[:])
	for t := 16; t < 64; t++ {
		s0 := circuit.Xor(b,
			circuit.Xor(b, circuit.Rotr(b, w[t-15], 7), circuit.Rotr(b, w[t-15], 18)),
			circuit.Shr(b, w[t-15], 3),
		)
		s1 := circuit.Xor(b,
			circuit.Xor(b, circuit.Rotr(b, w[t-2], 17), circuit.Rotr(b, w[t-2], 19)),
			circuit.Shr(b, w[t-2], 10),
		)
		w[t] = circuit.AddMod(b, circuit.AddMod(b, circuit.AddMod(b, w[t-16], s0), w[t-7]), s1)
	}

	a, bb, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for t := 0; t < 64; t++ {
		s1 := circuit.Xor(b, circuit.Xor(b, circuit.Rotr(b, e, 6), circuit.Rotr(b, e, 11)), circuit.Rotr(b, e, 25))
		ch := choice32(b, e, f, g)
		kt := circuit.ConstWord(b, sha256K[t])
		temp1 := circuit.AddMod(b, circuit.AddMod(b, circuit.AddMod(b, circuit.AddMod(b, hh, s1), ch), kt), w[t])
		s0 := circuit.Xor(b, circuit.Xor(b, circuit.Rotr(b, a, 2), circuit.Rotr(b, a, 13)), circuit.Rotr(b, a, 22))
		maj := majority32(b, a, bb, c)
		temp2 := circuit.AddMod(b, s0, maj)

		hh, g, f = g, f, e
		e = circuit.AddMod(b, d, temp1)
		d, c, bb = c, bb, a
		a = circuit.AddMod(b, temp1, temp2)
	}

	return Digest256{
		circuit.AddMod(b, h[0], a), circuit.AddMod(b, h[1], bb),
		circuit.AddMod(b, h[2], c), circuit.AddMod(b, h[3], d),
		circuit.AddMod(b, h[4], e), circuit.AddMod(b, h[5], f),
		circuit.AddMod(b, h[6], g), circuit.AddMod(b, h[7], hh),
	}
}

// choice32 is FIPS 180-4's Ch(x,y,z) = (x AND y) XOR (NOT x AND z).
func choice32(b *circuit.Builder, x, y, z circuit.Word[uint32]) circuit.Word[uint32] {
	return circuit.Xor(b, circuit.And(b, x, y), circuit.And(b, circuit.Not(b, x), z))
}

// majority32 is FIPS 180-4's Maj(x,y,z) = (x AND y) XOR (x AND z) XOR (y AND z).
func majority32(b *circuit.Builder, x, y, z circuit.Word[uint32]) circuit.Word[uint32] {
	return circuit.Xor(b, circuit.Xor(b, circuit.And(b, x, y), circuit.And(b, x, z)), circuit.And(b, y, z))
}

// Sum256 hashes a message already padded and split into 512-bit blocks
// (FIPS 180-4 padding is a pure-value transform done before blessing, see
// Pad512), returning the eight-word digest.
func Sum256(b *circuit.Builder, blocks []Block256) Digest256 {
	h := Digest256{}
	for i, v := range sha256H0 {
		h[i] = circuit.ConstWord(b, v)
	}
	for _, blk := range blocks {
		h = Compress256(b, h, blk)
	}
	return h
}

// Pad512 applies the FIPS 180-4 §5.1.1 padding rule to msg (a byte slice)
// and returns it split into big-endian uint32 words, sixteen per block.
// This is a plain-value transform (no circuit variables are involved)
// performed before the caller blesses each word into the circuit.
func Pad512(msg []byte) [][16]uint32 {
	bitLen := uint64(len(msg)) * 8
	padded := append([]byte(nil), msg...)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0)
	}
	for i := 7; i >= 0; i-- {
		padded = append(padded, byte(bitLen>>(uint(i)*8)))
	}

	blocks := make([][16]uint32, len(padded)/64)
	for bi := range blocks {
		for wi := 0; wi < 16; wi++ {
			off := bi*64 + wi*4
			blocks[bi][wi] = uint32(padded[off])<<24 | uint32(padded[off+1])<<16 |
				uint32(padded[off+2])<<8 | uint32(padded[off+3])
		}
	}
	return blocks
}
