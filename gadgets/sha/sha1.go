package sha

import "github.com/jancarlsson/snarkfront/circuit"

// sha1H0 is the SHA-1 initial hash value (FIPS 180-4 §5.3.1). SHA-1 predates
// the SHA-2 family and uses a five-word chaining value and a different
// round function; it is included for completeness but, being cryptographically
// broken, is not exercised by the end-to-end scenarios.
var sha1H0 = [5]uint32{
	0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0,
}

// Block160 is a single 512-bit message block for SHA-1 (same schedule width
// as SHA-256's Block256, reused structurally but kept distinct to avoid
// conflating the two message-schedule lengths).
type Block160 = [16]circuit.Word[uint32]

// Digest160 is the five-word SHA-1 output.
type Digest160 = [5]circuit.Word[uint32]

// Compress160 runs the SHA-1 compression function over h with one block
// (FIPS 180-4 §6.1.2).
func Compress160(b *circuit.Builder, h Digest160, block Block160) Digest160 {
	var w [80]circuit.Word[uint32]
	copy(w[:16], block[:])
	for t := 16; t < 80; t++ {
		w[t] = circuit.Rotl(b, circuit.Xor(b, circuit.Xor(b, circuit.Xor(b, w[t-3], w[t-8]), w[t-14]), w[t-16]), 1)
	}

	a, bb, c, d, e := h[0], h[1], h[2], h[3], h[4]
	for t := 0; t < 80; t++ {
		var f circuit.Word[uint32]
		var k uint32
		switch {
		case t < 20:
			f, k = choice32(b, bb, c, d), 0x5a827999
		case t < 40:
			f, k = parity32(b, bb, c, d), 0x6ed9eba1
		case t < 60:
			f, k = majority32(b, bb, c, d), 0x8f1bbcdc
		default:
			f, k = parity32(b, bb, c, d), 0xca62c1d6
		}
		temp := circuit.AddMod(b, circuit.AddMod(b, circuit.AddMod(b, circuit.AddMod(b, circuit.Rotl(b, a, 5), f), e), circuit.ConstWord(b, k)), w[t])
		e = d
		d = c
		c = circuit.Rotl(b, bb, 30)
		bb = a
		a = temp
	}

	return Digest160{
		circuit.AddMod(b, h[0], a), circuit.AddMod(b, h[1], bb), circuit.AddMod(b, h[2], c),
		circuit.AddMod(b, h[3], d), circuit.AddMod(b, h[4], e),
	}
}

func parity32(b *circuit.Builder, x, y, z circuit.Word[uint32]) circuit.Word[uint32] {
	return circuit.Xor(b, circuit.Xor(b, x, y), z)
}

// Sum160 hashes padded 512-bit blocks with SHA-1 (sharing Pad512 with
// SHA-256/224, since both use the same 64-bit length field).
func Sum160(b *circuit.Builder, blocks []Block160) Digest160 {
	h := Digest160{}
	for i, v := range sha1H0 {
		h[i] = circuit.ConstWord(b, v)
	}
	for _, blk := range blocks {
		h = Compress160(b, h, blk)
	}
	return h
}
