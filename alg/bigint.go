package alg

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/jancarlsson/snarkfront/field"
	"github.com/jancarlsson/snarkfront/ops"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// BigInt is the arbitrary-precision specialisation of Alg (spec §4.4),
// bounded to field.MaxBigIntBits() bits (design note 9). Unlike the
// fixed-width Word specialisation its primary representation is the
// scalar term; ArgBits fills SplitBits with the bit decomposition, using a
// bitset.BitSet rather than []int since the width can run to 128 bits.
// Compare does not call ArgBits: it splits its own offset difference.
type BigInt struct {
	Value     big.Int
	Witness   field.Fr
	Terms     []r1cs.Term // length 1 until ArgBits replaces it with per-bit terms
	SplitBits *bitset.BitSet
	Decimal   string // non-empty for public inputs (cowitness encoding)
}

// BlessBigInt binds a fresh BigInt variable to v (spec §4.4 constructor 1).
// Public values additionally record a decimal cowitness, since a 128-bit
// value may not round-trip through the backend's native public-input
// encoding (spec §4.7 witnessTerms).
func BlessBigInt(s *r1cs.System, v *big.Int, public bool) BigInt {
	w := s.Zero().SetBigInt(v)
	var t r1cs.Term
	if public {
		t = s.CreateVariable(w, true)
	} else {
		t = s.CreateConstant(w)
	}
	b := BigInt{Value: *new(big.Int).Set(v), Witness: w, Terms: []r1cs.Term{t}}
	if public {
		b.Decimal = v.Text(10)
		s.WitnessTerms(b.Terms, b.Decimal)
	}
	return b
}

// ConstBigInt binds a compile-time constant BigInt (spec §4.4 constructor 2).
func ConstBigInt(s *r1cs.System, v *big.Int) BigInt {
	w := s.Zero().SetBigInt(v)
	return BigInt{Value: *new(big.Int).Set(v), Witness: w, Terms: []r1cs.Term{s.CreateConstant(w)}}
}

// ArgBits decomposes b's scalar term into field.MaxBigIntBits() boolean
// bits, caching the decomposition in SplitBits (spec §4.7 argBits).
func (b BigInt) ArgBits(s *r1cs.System) BigInt {
	n := field.MaxBigIntBits()
	bitVals := make([]int, n)
	for i := 0; i < n; i++ {
		bitVals[i] = int(b.Value.Bit(i))
	}
	bits := argBits(s, b.Terms[0], bitVals)
	bs := bitset.New(uint(n))
	for i, v := range bitVals {
		if v != 0 {
			bs.Set(uint(i))
		}
	}
	b.Terms = bits
	b.SplitBits = bs
	return b
}

// Scalar realises ScalarOps (ADD/SUB/MUL) on two BigInt values (spec §4.6
// table); all three are a single quadratic or linear gate on the scalar
// terms, so the dispatch lives in one function.
func Scalar(s *r1cs.System, k ops.ScalarOps, a, b BigInt) BigInt {
	var term r1cs.Term
	var value big.Int
	switch k {
	case ops.SADD:
		term = s.GateAdd(a.Terms[0], b.Terms[0], a.Witness, b.Witness)
		value.Add(&a.Value, &b.Value)
	case ops.SSUB:
		term = s.GateSub(a.Terms[0], b.Terms[0], a.Witness, b.Witness)
		value.Sub(&a.Value, &b.Value)
	case ops.SMUL:
		term = s.GateMul(a.Terms[0], b.Terms[0], a.Witness, b.Witness)
		value.Mul(&a.Value, &b.Value)
	default:
		panic("alg: unknown ScalarOps")
	}
	return BigInt{Value: value, Witness: s.Evaluate(r1cs.Single(term)), Terms: []r1cs.Term{term}}
}

// Compare realises a ScalarCmp between two BigInt values using the
// offset-and-split trick from spec §4.5: diff = 2^n + (a-b) (or (b-a) for
// LT/LE) is split into n+1 bits; bit n (the "high" bit) is 1 iff a >= b
// (b >= a for LT/LE), and the low n bits are all zero iff a == b. This resolves the spec's
// flagged ambiguity (§9 open question 3) by deriving EQ/NEQ directly from
// that algebra instead of reusing the source's (possibly mistyped) NOR
// table entry.
func Compare(s *r1cs.System, k ops.ScalarCmp, a, b BigInt) Alg[bool] {
	n := field.MaxBigIntBits()
	offset := new(big.Int).Lsh(big.NewInt(1), uint(n))
	offsetTerm := s.CreateConstant(s.Zero().SetBigInt(offset))

	var diffTerm r1cs.Term
	var diffVal big.Int
	switch k {
	case ops.CLT, ops.CLE:
		sub := s.GateSub(b.Terms[0], a.Terms[0], b.Witness, a.Witness)
		diffTerm = s.GateAdd(offsetTerm, sub, s.Zero().SetBigInt(offset), b.Witness.Sub(a.Witness))
		diffVal.Add(offset, new(big.Int).Sub(&b.Value, &a.Value))
	default:
		sub := s.GateSub(a.Terms[0], b.Terms[0], a.Witness, b.Witness)
		diffTerm = s.GateAdd(offsetTerm, sub, s.Zero().SetBigInt(offset), a.Witness.Sub(b.Witness))
		diffVal.Add(offset, new(big.Int).Sub(&a.Value, &b.Value))
	}

	bitVals := make([]int, n+1)
	for i := 0; i <= n; i++ {
		bitVals[i] = int(diffVal.Bit(i))
	}
	bitTerms := argBits(s, diffTerm, bitVals)
	hi, hiVal := bitTerms[n], bitVals[n] != 0
	low, lowVals := bitTerms[:n], toBoolSlice(bitVals[:n])
	orLow, orLowVal := s.ImperativeFold(r1cs.GateOr, low, lowVals)

	var term r1cs.Term
	var val bool
	switch k {
	case ops.CGE:
		term, val = hi, hiVal
	case ops.CLT:
		term, val = s.Gate2(r1cs.GateAnd, hi, orLow, hiVal, orLowVal), hiVal && orLowVal
	case ops.CGT:
		term, val = s.Gate2(r1cs.GateAnd, hi, orLow, hiVal, orLowVal), hiVal && orLowVal
	case ops.CLE:
		term, val = hi, hiVal
	case ops.CEQ:
		notOrLow, notOrLowVal := s.Gate1(orLow, orLowVal), !orLowVal
		term, val = s.Gate2(r1cs.GateAnd, hi, notOrLow, hiVal, notOrLowVal), hiVal && notOrLowVal
	case ops.CNEQ:
		notOrLow, notOrLowVal := s.Gate1(orLow, orLowVal), !orLowVal
		eqT, eqV := s.Gate2(r1cs.GateAnd, hi, notOrLow, hiVal, notOrLowVal), hiVal && notOrLowVal
		term, val = s.Gate1(eqT, eqV), !eqV
	default:
		panic("alg: unknown ScalarCmp")
	}
	return Alg[bool]{Value: val, Witness: s.BoolTo(val), Terms: []r1cs.Term{term}}
}

// Equal realises the two-valued EqualityCmp in terms of Compare, for
// callers that reach BigInt through the generic Foreign/cross-type path
// rather than the full ScalarCmp table.
func Equal(s *r1cs.System, k ops.EqualityCmp, a, b BigInt) Alg[bool] {
	if k == ops.EQ {
		return Compare(s, ops.CEQ, a, b)
	}
	return Compare(s, ops.CNEQ, a, b)
}
