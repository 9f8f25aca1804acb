package merkle

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/jancarlsson/snarkfront/circuit"
	"github.com/jancarlsson/snarkfront/field/frbn254"
	"github.com/jancarlsson/snarkfront/gadgets/sha"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// bytesToWords/wordsToBytes convert between the gadget's big-endian uint32
// word digest and a plain 32-byte slice, so the test tree can be built with
// the standard library's sha256 as an oracle.
func bytesToWords(d [32]byte) [8]uint32 {
	var w [8]uint32
	for i := 0; i < 8; i++ {
		w[i] = binary.BigEndian.Uint32(d[i*4 : i*4+4])
	}
	return w
}

func wordsToBytes(w [8]uint32) [32]byte {
	var d [32]byte
	for i := 0; i < 8; i++ {
		binary.BigEndian.PutUint32(d[i*4:i*4+4], w[i])
	}
	return d
}

func hashPair256(left, right [32]byte) [32]byte {
	var buf [64]byte
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return sha256.Sum256(buf[:])
}

// sha256PairGadget feeds two 256-bit digests through the SHA-256 gadget as
// a single 64-byte message (always exactly two 512-bit blocks once FIPS
// padding is applied).
func sha256PairGadget(b *circuit.Builder, left, right Digest) Digest {
	var block0, block1 sha.Block256
	copy(block0[:8], left[:])
	copy(block0[8:], right[:])
	block1[0] = circuit.ConstWord(b, uint32(0x80000000))
	for i := 1; i < 15; i++ {
		block1[i] = circuit.ConstWord(b, uint32(0))
	}
	block1[15] = circuit.ConstWord(b, uint32(512))
	return sha.Sum256(b, []sha.Block256{block0, block1})
}

// TestMerklePathLeaf10 is the spec §8 end-to-end scenario: a depth-4 tree
// over leaves 0..15, authentication path for leaf 10 re-folded with SHA-256
// reproduces the recorded root digest.
func TestMerklePathLeaf10(t *testing.T) {
	const depth = 4
	leafHash := func(i int) [32]byte { return sha256.Sum256([]byte{byte(i)}) }

	level := make([][32]byte, 16)
	for i := range level {
		level[i] = leafHash(i)
	}

	idx := 10
	var siblingBytes [depth][32]byte
	var rightChild [depth]bool
	for d := 0; d < depth; d++ {
		var sibIdx int
		if idx%2 == 0 {
			sibIdx, rightChild[d] = idx+1, false
		} else {
			sibIdx, rightChild[d] = idx-1, true
		}
		siblingBytes[d] = level[sibIdx]

		next := make([][32]byte, len(level)/2)
		for p := range next {
			next[p] = hashPair256(level[2*p], level[2*p+1])
		}
		level = next
		idx /= 2
	}
	wantRoot := level[0]

	b := circuit.New(frbn254.Zero, r1cs.Config{})

	leafWords := bytesToWords(leafHash(10))
	var leaf Digest
	for i, w := range leafWords {
		leaf[i] = circuit.BlessWord(b, w, false)
	}

	var path Path
	for d := 0; d < depth; d++ {
		sibWords := bytesToWords(siblingBytes[d])
		var sib Digest
		for i, w := range sibWords {
			sib[i] = circuit.BlessWord(b, w, false)
		}
		path.Siblings = append(path.Siblings, sib)
		path.ChildBits = append(path.ChildBits, b.BlessBool(rightChild[d], false))
	}

	root := Fold(b, leaf, path, sha256PairGadget)
	gotRoot := wordsToBytes([8]uint32{
		root[0].Value(), root[1].Value(), root[2].Value(), root[3].Value(),
		root[4].Value(), root[5].Value(), root[6].Value(), root[7].Value(),
	})
	if gotRoot != wantRoot {
		t.Fatalf("root = %x, want %x", gotRoot, wantRoot)
	}

	var rootDigest Digest
	rootWords := bytesToWords(wantRoot)
	for i, w := range rootWords {
		rootDigest[i] = circuit.ConstWord(b, w)
	}
	AssertRoot(b, leaf, path, sha256PairGadget, rootDigest)

	if err := b.Sys.Audit(); err != nil {
		t.Fatalf("constraint audit failed: %v", err)
	}
}
