package r1cs

import "github.com/jancarlsson/snarkfront/field"

// DeclarativeAnd asserts that every bit in bits is 1 (spec §4.5 "declarative
// multi-AND"), using the inverse-witness trick instead of emitting one
// booleanity-style equality constraint per bit. A fresh helper variable z is
// forced to 1 by routing its defining equation through a zero-valued B
// combination (so the multiplication is vacuous and only the C side, 1-z,
// is constrained to zero); the first constraint then uses that forced z to
// assert the bit sum equals len(bits).
func (s *System) DeclarativeAnd(bits []Term) {
	one := s.zero.One()
	n := s.zero.SetUint64(uint64(len(bits)))
	sum := make(Combination, len(bits))
	copy(sum, bits)
	z := s.CreateVariable(one, false)

	// (N - sum(x)) * z = 0
	nMinusSum := append(Combination{{Coeff: n, ID: 0}}, scaleAll(sum, s.zero.Sub(one))...)
	s.addConstraint(nMinusSum, Combination{z}, nil)
	// sum(x) * 0 = 1 - z
	s.addConstraint(sum, nil, Combination{{Coeff: one, ID: 0}, z.Scale(s.zero.Sub(one))})
}

// DeclarativeNor asserts that every bit in bits is 0 (spec §4.5 "declarative
// multi-NOR"), the zero-result twin of DeclarativeAnd.
func (s *System) DeclarativeNor(bits []Term) {
	one := s.zero.One()
	sum := make(Combination, len(bits))
	copy(sum, bits)
	z := s.CreateVariable(s.zero, false)

	// sum(x) * (1 - z) = 0
	oneMinusZ := Combination{{Coeff: one, ID: 0}, z.Scale(s.zero.Sub(one))}
	s.addConstraint(sum, oneMinusZ, nil)
	// sum(x) * 0 = z
	s.addConstraint(sum, nil, Combination{z})
}

func scaleAll(c Combination, k field.Fr) Combination {
	out := make(Combination, len(c))
	for i, t := range c {
		out[i] = t.Scale(k)
	}
	return out
}

// ImperativeFold reduces bits (with parallel witness values vals) to a
// single term/value pair by repeatedly applying the binary gate k in a
// power-of-two tournament (spec §4.5: "fold pairs of inputs ... until a
// single bit remains"). A vector whose length is not a power of two is
// padded with k's identity element (true for AND, false for OR/XOR) so
// the padding never changes the folded result — duplicating the last bit
// would be safe for AND/OR's idempotence but silently flips an XOR fold's
// parity, since x^x=0 introduces a spurious cancellation. bits and vals
// must have equal, non-zero length.
func (s *System) ImperativeFold(k BoolGate, bits []Term, vals []bool) (Term, bool) {
	if len(bits) == 0 || len(bits) != len(vals) {
		s.fail("", "ImperativeFold requires matching, non-empty bits/vals")
	}
	terms := append([]Term(nil), bits...)
	bvals := append([]bool(nil), vals...)
	padVal := foldIdentity(k)
	padTerm := s.CreateConstant(s.BoolTo(padVal))
	for !isPowerOfTwo(len(terms)) {
		terms = append(terms, padTerm)
		bvals = append(bvals, padVal)
	}
	for len(terms) > 1 {
		next := make([]Term, len(terms)/2)
		nextVals := make([]bool, len(terms)/2)
		for i := 0; i < len(terms); i += 2 {
			next[i/2] = s.Gate2(k, terms[i], terms[i+1], bvals[i], bvals[i+1])
			nextVals[i/2] = evalBoolConst(k, bvals[i], bvals[i+1])
		}
		terms, bvals = next, nextVals
	}
	return terms[0], bvals[0]
}

func isPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// foldIdentity returns k's identity element: padding an ImperativeFold
// input with this value leaves the folded result unchanged regardless of
// how many copies are appended.
func foldIdentity(k BoolGate) bool {
	switch k {
	case GateAnd:
		return true
	case GateOr, GateXor:
		return false
	default:
		return false
	}
}
