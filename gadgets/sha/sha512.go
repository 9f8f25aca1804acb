package sha

import (
	"github.com/jancarlsson/snarkfront/circuit"
)

// sha512K are the FIPS 180-4 round constants for the SHA-512 family.
var sha512K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}

// sha512H0 is the SHA-512 initial hash value.
var sha512H0 = [8]uint64{
	0x6a09e667f3bcc908, 0xbb67ae8584caa73b, 0x3c6ef372fe94f82b, 0xa54ff53a5f1d36f1,
	0x510e527fade682d1, 0x9b05688c2b3e6c1f, 0x1f83d9abfb41bd6b, 0x5be0cd19137e2179,
}

// sha384H0, sha512_224H0 and sha512_256H0 are the alternate IVs that share
// Compress512's round structure (spec supplement: "SHA-384/512-224/512-256
// differ from SHA-512 only in IV and output truncation").
var sha384H0 = [8]uint64{
	0xcbbb9d5dc1059ed8, 0x629a292a367cd507, 0x9159015a3070dd17, 0x152fecd8f70e5939,
	0x67332667ffc00b31, 0x8eb44a8768581511, 0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
}

var sha512224H0 = [8]uint64{
	0x8c3d37c819544da2, 0x73e1996689dcd4d6, 0x1dfab7ae32ff9c82, 0x679dd514582f9fcf,
	0x0f6d2b697bd44da8, 0x77e36f7304c48942, 0x3f9d85a86a1d36c8, 0x1112e6ad91d692a1,
}

var sha512256H0 = [8]uint64{
	0x22312194fc2bf72c, 0x9f555fa3c84c64c2, 0x2393b86b6f53b151, 0x963877195940eabd,
	0x96283ee2a88effe3, 0xbe5e1e2553863992, 0x2b0199fc2c85b8aa, 0x0eb72ddc81c52ca2,
}

// Block512 is a single 1024-bit message block: sixteen big-endian uint64
// words.
type Block512 = [16]circuit.Word[uint64]

// Digest512 is the eight-word chaining value shared by the whole SHA-512
// family; callers needing SHA-384/512-224/512-256 truncate/select the
// appropriate words and half-words after the final Compress512 call.
type Digest512 = [8]circuit.Word[uint64]

// Compress512 runs the SHA-512 compression function over h with one message
// block (FIPS 180-4 §6.4.2), shared verbatim by SHA-512, SHA-384, SHA-512/224
// and SHA-512/256 — only the IV passed into the first call differs.
func Compress512(b *circuit.Builder, h Digest512, block Block512) Digest512 {
	var w [80]circuit.Word[uint64]
	copy(w[:16], block[:])
	for t := 16; t < 80; t++ {
		s0 := circuit.Xor(b,
			circuit.Xor(b, circuit.Rotr(b, w[t-15], 1), circuit.Rotr(b, w[t-15], 8)),
			circuit.Shr(b, w[t-15], 7),
		)
		s1 := circuit.Xor(b,
			circuit.Xor(b, circuit.Rotr(b, w[t-2], 19), circuit.Rotr(b, w[t-2], 61)),
			circuit.Shr(b, w[t-2], 6),
		)
		w[t] = circuit.AddMod(b, circuit.AddMod(b, circuit.AddMod(b, w[t-16], s0), w[t-7]), s1)
	}

	a, bb, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for t := 0; t < 80; t++ {
		s1 := circuit.Xor(b, circuit.Xor(b, circuit.Rotr(b, e, 14), circuit.Rotr(b, e, 18)), circuit.Rotr(b, e, 41))
		ch := choice64(b, e, f, g)
		kt := circuit.ConstWord(b, sha512K[t])
		temp1 := circuit.AddMod(b, circuit.AddMod(b, circuit.AddMod(b, circuit.AddMod(b, hh, s1), ch), kt), w[t])
		s0 := circuit.Xor(b, circuit.Xor(b, circuit.Rotr(b, a, 28), circuit.Rotr(b, a, 34)), circuit.Rotr(b, a, 39))
		maj := majority64(b, a, bb, c)
		temp2 := circuit.AddMod(b, s0, maj)

		hh, g, f = g, f, e
		e = circuit.AddMod(b, d, temp1)
		d, c, bb = c, bb, a
		a = circuit.AddMod(b, temp1, temp2)
	}

	return Digest512{
		circuit.AddMod(b, h[0], a), circuit.AddMod(b, h[1], bb),
		circuit.AddMod(b, h[2], c), circuit.AddMod(b, h[3], d),
		circuit.AddMod(b, h[4], e), circuit.AddMod(b, h[5], f),
		circuit.AddMod(b, h[6], g), circuit.AddMod(b, h[7], hh),
	}
}

func choice64(b *circuit.Builder, x, y, z circuit.Word[uint64]) circuit.Word[uint64] {
	return circuit.Xor(b, circuit.And(b, x, y), circuit.And(b, circuit.Not(b, x), z))
}

func majority64(b *circuit.Builder, x, y, z circuit.Word[uint64]) circuit.Word[uint64] {
	return circuit.Xor(b, circuit.Xor(b, circuit.And(b, x, y), circuit.And(b, x, z)), circuit.And(b, y, z))
}

// sum512 folds blocks through Compress512 starting from iv, the pattern
// shared by every SHA-512-family variant below.
func sum512(b *circuit.Builder, iv [8]uint64, blocks []Block512) Digest512 {
	h := Digest512{}
	for i, v := range iv {
		h[i] = circuit.ConstWord(b, v)
	}
	for _, blk := range blocks {
		h = Compress512(b, h, blk)
	}
	return h
}

func Sum512(b *circuit.Builder, blocks []Block512) Digest512    { return sum512(b, sha512H0, blocks) }
func Sum384(b *circuit.Builder, blocks []Block512) Digest512    { return sum512(b, sha384H0, blocks) }
func Sum512_224(b *circuit.Builder, blocks []Block512) Digest512 { return sum512(b, sha512224H0, blocks) }
func Sum512_256(b *circuit.Builder, blocks []Block512) Digest512 { return sum512(b, sha512256H0, blocks) }

// Pad1024 applies the FIPS 180-4 §5.1.2 padding rule (128-bit length field)
// used by the whole SHA-512 family, returning big-endian uint64 words split
// sixteen per block.
func Pad1024(msg []byte) [][16]uint64 {
	bitLen := uint64(len(msg)) * 8
	padded := append([]byte(nil), msg...)
	padded = append(padded, 0x80)
	for len(padded)%128 != 112 {
		padded = append(padded, 0)
	}
	for i := 0; i < 8; i++ {
		padded = append(padded, 0) // high 64 bits of the 128-bit length: always zero for realistic message sizes
	}
	for i := 7; i >= 0; i-- {
		padded = append(padded, byte(bitLen>>(uint(i)*8)))
	}

	blocks := make([][16]uint64, len(padded)/128)
	for bi := range blocks {
		for wi := 0; wi < 16; wi++ {
			off := bi*128 + wi*8
			var word uint64
			for j := 0; j < 8; j++ {
				word = word<<8 | uint64(padded[off+j])
			}
			blocks[bi][wi] = word
		}
	}
	return blocks
}
