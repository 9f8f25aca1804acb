package r1cs

import (
	"github.com/jancarlsson/snarkfront/field"
	"github.com/jancarlsson/snarkfront/ops"
)

// BoolGate identifies one of the five single-bit boolean gadgets spec
// §4.6's table lists: AND/OR/XOR/SAME/CMPLMNT are the same constraint
// template whether they were dispatched from the Bool specialisation's
// LogicalOps or from a fixed-width specialisation's bit-parallel
// BitwiseOps, so both enums fold onto this one gate identity here instead
// of duplicating the gadget per caller.
type BoolGate int

const (
	GateAnd BoolGate = iota
	GateOr
	GateXor
	GateSame
	GateCmplmnt
)

// LogicalGate maps a LogicalOps operator to its BoolGate.
func LogicalGate(k ops.LogicalOps) BoolGate {
	switch k {
	case ops.LAND:
		return GateAnd
	case ops.LOR:
		return GateOr
	case ops.LXOR:
		return GateXor
	case ops.LSAME:
		return GateSame
	case ops.LCMPLMNT:
		return GateCmplmnt
	default:
		panic("r1cs: unknown LogicalOps")
	}
}

// BitwiseGate maps the bit-parallel subset of BitwiseOps (AND/OR/XOR/
// SAME/CMPLMNT) to its BoolGate. ADDMOD and the permutation operators are
// not bit-parallel gates and are handled separately (ADDMOD by package
// alg's addMod, the permutations by Permute below).
func BitwiseGate(k ops.BitwiseOps) BoolGate {
	switch k {
	case ops.BAND:
		return GateAnd
	case ops.BOR:
		return GateOr
	case ops.BXOR:
		return GateXor
	case ops.BSAME:
		return GateSame
	case ops.BCMPLMNT:
		return GateCmplmnt
	default:
		panic("r1cs: operator is not a bit-parallel BoolGate")
	}
}

func (s *System) BoolTo(b bool) field.Fr { return field.BoolTo(b, s.zero) }

func evalBoolConst(k BoolGate, x, y bool) bool {
	xi, yi := 0, 0
	if x {
		xi = 1
	}
	if y {
		yi = 1
	}
	switch k {
	case GateAnd:
		return ops.EvalLogical(ops.LAND, xi, yi) != 0
	case GateOr:
		return ops.EvalLogical(ops.LOR, xi, yi) != 0
	case GateXor:
		return ops.EvalLogical(ops.LXOR, xi, yi) != 0
	case GateSame:
		return ops.EvalLogical(ops.LSAME, xi, yi) != 0
	default:
		panic("r1cs: evalBoolConst called with a unary gate")
	}
}

// Gate1 realises the unary CMPLMNT gadget x+z=1 (spec §4.6 table). A
// constant operand yields a constant result with no constraint emitted
// (invariant I5).
func (s *System) Gate1(x Term, xVal bool) Term {
	if !x.IsVariable() {
		return s.CreateConstant(s.BoolTo(!xVal))
	}
	one := s.zero.One()
	z := s.CreateVariable(s.BoolTo(!xVal), false)
	a := Combination{x, z}
	s.addConstraint(a, Combination{{Coeff: one, ID: 0}}, Combination{{Coeff: one, ID: 0}})
	return z
}

// Gate2 realises one of the binary boolean gadgets (AND/OR/XOR/SAME),
// applying the full peephole/identity table from spec §4.5: both
// constant operands compute directly with no constraint; a mixed
// variable/constant pair simplifies to the variable, a constant, or its
// complement (the one case that adds a term, via Gate1's linear
// constraint) with no quadratic constraint; two variables emit the matching
// quadratic constraint from spec §4.6.
func (s *System) Gate2(k BoolGate, x, y Term, xVal, yVal bool) Term {
	if k == GateCmplmnt {
		panic("r1cs: Gate2 called with the unary CMPLMNT gate")
	}
	xVar, yVar := x.IsVariable(), y.IsVariable()
	switch {
	case !xVar && !yVar:
		return s.CreateConstant(s.BoolTo(evalBoolConst(k, xVal, yVal)))
	case xVar && yVar:
		return s.emitBoolGate(k, x, y, xVal, yVal)
	case xVar && !yVar:
		return s.boolIdentity(k, x, xVal, yVal)
	default:
		return s.boolIdentity(k, y, yVal, xVal)
	}
}

// boolIdentity implements the "one operand constant" row of spec §4.5's
// identity table: variable is the variable-side term, constVal is the
// other (constant) operand's boolean value.
func (s *System) boolIdentity(k BoolGate, variable Term, variableVal, constVal bool) Term {
	switch k {
	case GateAnd:
		if constVal {
			return variable
		}
		return s.CreateConstant(s.BoolTo(false))
	case GateOr:
		if constVal {
			return s.CreateConstant(s.BoolTo(true))
		}
		return variable
	case GateXor:
		if constVal {
			return s.Gate1(variable, variableVal)
		}
		return variable
	case GateSame:
		if constVal {
			return variable
		}
		return s.Gate1(variable, variableVal)
	default:
		panic("r1cs: boolIdentity called with the unary CMPLMNT gate")
	}
}

func (s *System) emitBoolGate(k BoolGate, x, y Term, xVal, yVal bool) Term {
	one := s.zero.One()
	two := s.zero.SetUint64(2)
	zVal := evalBoolConst(k, xVal, yVal)
	z := s.CreateVariable(s.BoolTo(zVal), false)
	switch k {
	case GateAnd:
		s.addConstraint(Combination{x}, Combination{y}, Combination{z})
	case GateOr:
		c := Combination{x, y, z.Scale(s.zero.Sub(one))}
		s.addConstraint(Combination{x}, Combination{y}, c)
	case GateXor:
		a := Combination{x.Scale(two)}
		c := Combination{x, y, z.Scale(s.zero.Sub(one))}
		s.addConstraint(a, Combination{y}, c)
	case GateSame:
		a := Combination{x.Scale(two)}
		c := Combination{x, y, z, {Coeff: s.zero.Sub(one), ID: 0}}
		s.addConstraint(a, Combination{y}, c)
	default:
		panic("r1cs: emitBoolGate called with the unary CMPLMNT gate")
	}
	return z
}

// GateAdd/GateSub/GateMul realise the scalar gadgets from spec §4.6's
// table (ADD/SUB/MUL), used by the BigInt specialisation. Peephole: two
// constants compute directly; an additive identity operand (zero) for
// ADD/SUB, or either operand being zero for MUL, returns the appropriate
// side without a new constraint.
func (s *System) GateAdd(x, y Term, xv, yv field.Fr) Term {
	if !x.IsVariable() && !y.IsVariable() {
		return s.CreateConstant(xv.Add(yv))
	}
	if x.ZeroTerm() {
		return y
	}
	if y.ZeroTerm() {
		return x
	}
	one := s.zero.One()
	z := s.CreateVariable(xv.Add(yv), false)
	a := Combination{x, y}
	s.addConstraint(a, Combination{{Coeff: one, ID: 0}}, Combination{z})
	return z
}

func (s *System) GateSub(x, y Term, xv, yv field.Fr) Term {
	if !x.IsVariable() && !y.IsVariable() {
		return s.CreateConstant(xv.Sub(yv))
	}
	if y.ZeroTerm() {
		return x
	}
	one := s.zero.One()
	z := s.CreateVariable(xv.Sub(yv), false)
	a := Combination{x, y.Scale(s.zero.Sub(one))}
	s.addConstraint(a, Combination{{Coeff: one, ID: 0}}, Combination{z})
	return z
}

func (s *System) GateMul(x, y Term, xv, yv field.Fr) Term {
	if !x.IsVariable() && !y.IsVariable() {
		return s.CreateConstant(xv.Mul(yv))
	}
	if x.ZeroTerm() || y.ZeroTerm() {
		return s.CreateConstant(s.zero)
	}
	if !x.IsVariable() {
		// scale: x is a nonzero constant, result = x.Coeff * y with no new gate
		return Term{Coeff: x.Coeff.Mul(termCoeffOne(y, s.zero)), ID: y.ID}
	}
	if !y.IsVariable() {
		return Term{Coeff: y.Coeff.Mul(termCoeffOne(x, s.zero)), ID: x.ID}
	}
	z := s.CreateVariable(xv.Mul(yv), false)
	s.addConstraint(Combination{x}, Combination{y}, Combination{z})
	return z
}

// termCoeffOne returns 1 scaled by t's own coefficient if t is a variable
// term with a non-unit coefficient (so GateMul's constant-fold path
// composes coefficients correctly instead of dropping them).
func termCoeffOne(t Term, zero field.Fr) field.Fr {
	if t.IsVariable() {
		return t.Coeff
	}
	return zero.One()
}

// GateSplit emits the bit-split constraint sum(2^i * b_i) = x (spec §4.6
// table, invariant I2), where bits are little-endian per-bit terms.
func (s *System) GateSplit(bits []Term, x Term) {
	one := s.zero.One()
	a := make(Combination, len(bits))
	for i, b := range bits {
		a[i] = b.Scale(s.pow.At(i))
	}
	s.addConstraint(a, Combination{{Coeff: one, ID: 0}}, Combination{x})
}

// Permute shifts or rotates a little-endian bit-term vector by n
// positions with no new constraints (spec §4.6 rank1_shiftleft/right,
// rank1_rotateleft/right). left selects shift/rotate direction;
// rotate selects shift (false) vs rotate (true) behaviour at the
// vacated positions.
func Permute(bits []Term, n int, left, rotate bool, zero field.Fr) []Term {
	w := len(bits)
	if n < 0 || n > w {
		panic("r1cs: permutation count out of range [0, w]")
	}
	if n == w && !rotate {
		out := make([]Term, w)
		for i := range out {
			out[i] = Term{Coeff: zero, ID: 0}
		}
		return out
	}
	if n%w == 0 {
		out := make([]Term, w)
		copy(out, bits)
		return out
	}
	out := make([]Term, w)
	for i := 0; i < w; i++ {
		var src int
		if left {
			src = i - n
		} else {
			src = i + n
		}
		if rotate {
			src = ((src % w) + w) % w
			out[i] = bits[src]
		} else if src >= 0 && src < w {
			out[i] = bits[src]
		} else {
			out[i] = Term{Coeff: zero, ID: 0}
		}
	}
	return out
}

// Xword implements rank1_xword: zero-extends a narrower bit vector to a
// wider one, truncates a wider vector to a narrower one, or replicates a
// single bool bit across every target position.
func Xword(bits []Term, newLen int, zero field.Fr) []Term {
	out := make([]Term, newLen)
	if len(bits) == 1 && newLen > 1 {
		for i := range out {
			out[i] = bits[0]
		}
		return out
	}
	for i := range out {
		if i < len(bits) {
			out[i] = bits[i]
		} else {
			out[i] = Term{Coeff: zero, ID: 0}
		}
	}
	return out
}
