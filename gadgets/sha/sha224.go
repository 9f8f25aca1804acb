package sha

import "github.com/jancarlsson/snarkfront/circuit"

// sha224H0 is the SHA-224 initial hash value; compression is identical to
// SHA-256 (FIPS 180-4 §5.3.2), only the IV and the final truncation to seven
// words differ.
var sha224H0 = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

// Sum224 runs the SHA-256 compression schedule from the SHA-224 IV; callers
// take the first seven words of the result as the digest (FIPS 180-4's
// truncation) and discard the eighth.
func Sum224(b *circuit.Builder, blocks []Block256) Digest256 {
	h := Digest256{}
	for i, v := range sha224H0 {
		h[i] = circuit.ConstWord(b, v)
	}
	for _, blk := range blocks {
		h = Compress256(b, h, blk)
	}
	return h
}
