package alg

import (
	"math/big"

	"github.com/jancarlsson/snarkfront/field"
	"github.com/jancarlsson/snarkfront/ops"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// Uint is the fixed-width unsigned subset of Word that the bit-parallel
// BitwiseOps specialisation applies to (spec §4.5 "Fixed-width unsigned").
type Uint interface {
	uint8 | uint32 | uint64
}

func toUint64[V Uint](v V) uint64 { return uint64(v) }

func fromUint64[V Uint](u uint64) V { return V(u) }

// Bitwise realises one of the bit-parallel BitwiseOps on two fixed-width
// algebraic values (spec §4.6 table): AND/OR/XOR/SAME one constraint per
// bit, CMPLMNT one complement gate per bit, ADDMOD a scalar addition
// re-split to recover the truncated low-order bits. SHL/SHR/ROTL/ROTR are
// handled separately by Permute, since they take a compile-time shift
// count rather than a second operand.
func Bitwise[V Uint](s *r1cs.System, k ops.BitwiseOps, x, y Alg[V]) Alg[V] {
	w := uint(field.SizeBits(x.Value))

	if k == ops.BCMPLMNT {
		xb := x.ArgBits(s)
		xBits := field.ValueBits(x.Value)
		terms := make([]r1cs.Term, len(xb.Terms))
		for i, t := range xb.Terms {
			terms[i] = s.Gate1(t, xBits[i] != 0)
		}
		value := fromUint64[V](ops.EvalBitwise(ops.BCMPLMNT, w, 0, toUint64(x.Value), 0))
		return Alg[V]{Value: value, Witness: valueToFr(s.Zero(), value), Terms: terms}
	}

	if k == ops.BADDMOD {
		return addMod(s, x, y, w)
	}

	xb, yb := x.ArgBits(s), y.ArgBits(s)
	xBits, yBits := field.ValueBits(x.Value), field.ValueBits(y.Value)
	gate := r1cs.BitwiseGate(k)
	terms := make([]r1cs.Term, len(xb.Terms))
	for i := range terms {
		terms[i] = s.Gate2(gate, xb.Terms[i], yb.Terms[i], xBits[i] != 0, yBits[i] != 0)
	}
	value := fromUint64[V](ops.EvalBitwise(k, w, 0, toUint64(x.Value), toUint64(y.Value)))
	return Alg[V]{Value: value, Witness: valueToFr(s.Zero(), value), Terms: terms}
}

// addMod performs the scalar addition behind BADDMOD and re-splits the sum
// into 2*w bits (spec §4.5: "allow the result bits to include carry
// positions up to 2*sizeBits, then re-split"); the returned Alg keeps only
// the low w bits, which is what every other operator expects to consume.
// Go's unsigned-overflow wraparound means Value is already x+y mod 2^w; the
// split constraint over the full 2w-bit sum is what proves that reduction
// inside the circuit.
func addMod[V Uint](s *r1cs.System, x, y Alg[V], w uint) Alg[V] {
	xs, ys := x.ArgScalar(s), y.ArgScalar(s)
	sum := s.GateAdd(xs.Terms[0], ys.Terms[0], x.Witness, y.Witness)
	sumVal := new(big.Int).Add(bigFromUint64(toUint64(x.Value)), bigFromUint64(toUint64(y.Value)))

	full := make([]int, 2*w)
	for i := range full {
		full[i] = int(sumVal.Bit(i))
	}
	bitTerms := argBits(s, sum, full)

	value := x.Value + y.Value // wraps mod 2^w for unsigned V
	return Alg[V]{Value: value, Witness: valueToFr(s.Zero(), value), Terms: bitTerms[:w]}
}

func bigFromUint64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

// Permute realises SHL/SHR/ROTL/ROTR on a fixed-width value (spec §4.6
// rank1_shiftleft/right, rank1_rotateleft/right): the term vector is
// rearranged with no new constraints.
func Permute[V Uint](s *r1cs.System, k ops.BitwiseOps, x Alg[V], n int) Alg[V] {
	xb := x.ArgBits(s)
	left := k == ops.BSHL || k == ops.BROTL
	rotate := k == ops.BROTL || k == ops.BROTR
	terms := r1cs.Permute(xb.Terms, n, left, rotate, s.Zero())
	w := uint(field.SizeBits(x.Value))
	value := fromUint64[V](ops.EvalBitwise(k, w, uint(n), toUint64(x.Value), 0))
	return Alg[V]{Value: value, Witness: valueToFr(s.Zero(), value), Terms: terms}
}

// Equality realises bit-parallel EQ/NEQ between two fixed-width values
// (spec §4.5: "bit-parallel SAME/XOR, then safeAND (EQ) or safeOR (NEQ)
// over the per-bit results"), folding with r1cs.ImperativeFold.
func Equality[V Uint](s *r1cs.System, k ops.EqualityCmp, x, y Alg[V]) Alg[bool] {
	xb, yb := x.ArgBits(s), y.ArgBits(s)
	xBits, yBits := field.ValueBits(x.Value), field.ValueBits(y.Value)

	var gate, fold r1cs.BoolGate
	if k == ops.EQ {
		gate, fold = r1cs.GateSame, r1cs.GateAnd
	} else {
		gate, fold = r1cs.GateXor, r1cs.GateOr
	}

	perBit := make([]r1cs.Term, len(xb.Terms))
	perVal := make([]bool, len(xb.Terms))
	for i := range perBit {
		xv, yv := xBits[i] != 0, yBits[i] != 0
		perBit[i] = s.Gate2(gate, xb.Terms[i], yb.Terms[i], xv, yv)
		if k == ops.EQ {
			perVal[i] = xv == yv
		} else {
			perVal[i] = xv != yv
		}
	}
	term, val := s.ImperativeFold(fold, perBit, perVal)
	return Alg[bool]{Value: val, Witness: s.BoolTo(val), Terms: []r1cs.Term{term}}
}
