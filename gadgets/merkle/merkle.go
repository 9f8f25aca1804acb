// Package merkle implements the authentication-path gadget from spec §6:
// an array of sibling digests plus a bit vector selecting left/right at
// each level, folded from leaf to root with a caller-supplied hash gadget
// (package sha) exactly the way gadgets/sha and gadgets/aes consume the
// core circuit-building layer.
package merkle

import "github.com/jancarlsson/snarkfront/circuit"

// Digest is a 256-bit hash digest carried as eight big-endian uint32 words,
// the same shape gadgets/sha.Digest256 uses.
type Digest = [8]circuit.Word[uint32]

// HashPair combines two child digests into their parent, e.g.
// sha.Sum256 over the sixteen-word block formed by concatenating left||right
// after Pad512. Merkle leaves the exact block construction to the caller so
// this package stays agnostic to which SHA variant (or block width) is in
// use, matching spec §6's "configurable hash" phrasing.
type HashPair func(b *circuit.Builder, left, right Digest) Digest

// Path is an authentication path of configurable depth: ChildBits[i] is
// true when the node being folded at level i is the *right* child of its
// parent (so Siblings[i] is the left child), false otherwise.
type Path struct {
	Siblings  []Digest
	ChildBits []circuit.Bool
}

// Depth reports the number of levels in the path (tree depth).
func (p Path) Depth() int { return len(p.Siblings) }

// Fold recomputes the path's root from a leaf digest: at each level, the
// current digest and its recorded sibling are ordered by the level's
// selector bit and combined with hash.
func Fold(b *circuit.Builder, leaf Digest, p Path, hash HashPair) Digest {
	cur := leaf
	for i := 0; i < p.Depth(); i++ {
		left := selectDigest(b, p.ChildBits[i], p.Siblings[i], cur)
		right := selectDigest(b, p.ChildBits[i], cur, p.Siblings[i])
		cur = hash(b, left, right)
	}
	return cur
}

// UpdatePath is Fold's named entry point from spec §6
// ("updatePath(leaf) folds from leaf to root using the hash gadget").
func UpdatePath(b *circuit.Builder, leaf Digest, p Path, hash HashPair) Digest {
	return Fold(b, leaf, p, hash)
}

// AssertRoot asserts that folding leaf along p with hash reproduces root
// (spec §8 invariant: "after updatePath(leaf), rootHash() equals the hash
// of siblings and the leaf folded with childBits").
func AssertRoot(b *circuit.Builder, leaf Digest, p Path, hash HashPair, root Digest) {
	got := Fold(b, leaf, p, hash)
	for i := range got {
		circuit.AssertEqual(b, got[i], root[i])
	}
}

func selectDigest(b *circuit.Builder, cond circuit.Bool, x, y Digest) Digest {
	var out Digest
	for i := range out {
		out[i] = circuit.SelectWord(b, cond, x[i], y[i])
	}
	return out
}
