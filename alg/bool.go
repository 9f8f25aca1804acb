package alg

import (
	"github.com/jancarlsson/snarkfront/ops"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// Logical realises a LogicalOps on two boolean algebraic values (spec §4.5
// "Bool"): r1cs.Gate1/Gate2 apply the constant-fold and identity peephole
// rules, so this function only needs to compute the witness-side value and
// delegate constraint emission.
func Logical(s *r1cs.System, k ops.LogicalOps, x, y Alg[bool]) Alg[bool] {
	if k == ops.LCMPLMNT {
		t := s.Gate1(x.Terms[0], x.Value)
		val := !x.Value
		return Alg[bool]{Value: val, Witness: s.BoolTo(val), Terms: []r1cs.Term{t}}
	}
	gate := r1cs.LogicalGate(k)
	t := s.Gate2(gate, x.Terms[0], y.Terms[0], x.Value, y.Value)
	val := ops.EvalLogical(k, boolToInt(x.Value), boolToInt(y.Value)) != 0
	return Alg[bool]{Value: val, Witness: s.BoolTo(val), Terms: []r1cs.Term{t}}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
