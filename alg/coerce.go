package alg

import (
	"github.com/jancarlsson/snarkfront/field"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// argScalar coerces a bit-vector term representation to a single scalar
// term, emitting the recombination split constraint sum(2^i*b_i)=x (spec
// §4.7 argScalar). A length-1 input is returned unchanged; an all-constant
// input folds to a constant with no constraint (invariant I5).
func argScalar(s *r1cs.System, value field.Fr, terms []r1cs.Term) r1cs.Term {
	if len(terms) == 1 {
		return terms[0]
	}
	allConst := true
	for _, t := range terms {
		if t.IsVariable() {
			allConst = false
			break
		}
	}
	if allConst {
		return s.CreateConstant(value)
	}
	x := s.CreateVariable(value, false)
	s.GateSplit(terms, x)
	return x
}

// argBits coerces a scalar term to an n-bit little-endian term vector given
// the plain-value bits to witness (spec §4.7 argBits): one fresh
// boolean-constrained variable per bit plus the split constraint binding
// them back to scalar, or (when scalar is itself constant) n constant
// terms with no constraint emitted.
func argBits(s *r1cs.System, scalar r1cs.Term, bits []int) []r1cs.Term {
	terms := make([]r1cs.Term, len(bits))
	allConst := !scalar.IsVariable()
	for i, b := range bits {
		bv := s.BoolTo(b != 0)
		if allConst {
			terms[i] = s.CreateConstant(bv)
			continue
		}
		t := s.CreateVariable(bv, false)
		s.AddBooleanity(t)
		terms[i] = t
	}
	if !allConst {
		s.GateSplit(terms, scalar)
	}
	return terms
}
