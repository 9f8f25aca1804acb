// Package circuit is the DSL façade (spec §4.8): it wraps an r1cs.System
// and an ast.Arena behind named methods in place of the source's operator
// overloads (&, |, ^, +, -, *, <<, >>, ==, !=, <, <=), mirroring the
// method-call surface gnark's own frontend.API exposes (Add, Sub, Xor,
// AssertIsEqual, Select, ...) since Go has no operator overloading.
package circuit

import (
	"math/big"

	"github.com/jancarlsson/snarkfront/alg"
	"github.com/jancarlsson/snarkfront/ast"
	"github.com/jancarlsson/snarkfront/field"
	"github.com/jancarlsson/snarkfront/ops"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// Builder owns the per-task accumulator and the AST arena backing the
// circuit currently under construction (spec §9: "replace the per-task
// global singleton with an explicit builder object passed by reference").
type Builder struct {
	Sys   *r1cs.System
	Arena *ast.Arena
}

// New creates a Builder over a fresh System/Arena pair for the given field.
func New(zero field.Fr, cfg r1cs.Config) *Builder {
	return &Builder{Sys: r1cs.New(zero, cfg), Arena: ast.NewArena()}
}

// Bool is a circuit-level boolean handle: an ast.Ref into the builder's
// arena, paired with the already-evaluated Alg[bool] the spec's eager
// single-pass evaluation model computes at construction time (design note
// 9: the source's lazy evaluation is not reproduced).
type Bool struct {
	ref   ast.Ref
	value alg.Alg[bool]
}

// BlessBool binds a fresh boolean circuit variable to v.
func (b *Builder) BlessBool(v bool, public bool) Bool {
	val := alg.Bless(b.Sys, v, public)
	return Bool{ref: b.Arena.NewVar(val), value: val}
}

// ConstBool wraps a compile-time boolean constant.
func (b *Builder) ConstBool(v bool) Bool {
	val := alg.Const(b.Sys, v)
	return Bool{ref: b.Arena.NewConst(val), value: val}
}

func (x Bool) Value() bool { return x.value.Value }

func (b *Builder) logical(k ops.LogicalOps, x, y Bool) Bool {
	var val alg.Alg[bool]
	var right ast.Ref
	if k == ops.LCMPLMNT {
		val = alg.Logical(b.Sys, k, x.value, alg.Alg[bool]{})
	} else {
		val = alg.Logical(b.Sys, k, x.value, y.value)
		right = y.ref
	}
	ref := b.Arena.NewOp(k, x.ref, right)
	return Bool{ref: ref, value: val}
}

func (b *Builder) And(x, y Bool) Bool  { return b.logical(ops.LAND, x, y) }
func (b *Builder) Or(x, y Bool) Bool   { return b.logical(ops.LOR, x, y) }
func (b *Builder) Xor(x, y Bool) Bool  { return b.logical(ops.LXOR, x, y) }
func (b *Builder) Same(x, y Bool) Bool { return b.logical(ops.LSAME, x, y) }
func (b *Builder) Not(x Bool) Bool     { return b.logical(ops.LCMPLMNT, x, Bool{}) }

// AssertTrue/AssertFalse emit b=1 / b=0 on the underlying term (spec §4.8).
func (b *Builder) AssertTrue(x Bool)  { b.Sys.SetTrue(x.value.Terms[0]) }
func (b *Builder) AssertFalse(x Bool) { b.Sys.SetFalse(x.value.Terms[0]) }

// Select realises a ternary a ? x : y as (x XOR y) AND a XOR y, the
// standard boolean-algebra identity, built from the existing gates instead
// of a dedicated R1 constraint template.
func (b *Builder) Select(cond Bool, x, y Bool) Bool {
	diff := b.Xor(x, y)
	masked := b.And(cond, diff)
	return b.Xor(masked, y)
}

// Word is a circuit-level fixed-width unsigned handle over V (uint8, uint32
// or uint64).
type Word[V alg.Uint] struct {
	ref   ast.Ref
	value alg.Alg[V]
}

func (x Word[V]) Value() V { return x.value.Value }

// BlessWord binds a fresh fixed-width circuit variable to v.
func BlessWord[V alg.Uint](b *Builder, v V, public bool) Word[V] {
	val := alg.Bless(b.Sys, v, public)
	return Word[V]{ref: b.Arena.NewVar(val), value: val}
}

// ConstWord wraps a compile-time fixed-width constant.
func ConstWord[V alg.Uint](b *Builder, v V) Word[V] {
	val := alg.Const(b.Sys, v)
	return Word[V]{ref: b.Arena.NewConst(val), value: val}
}

func bitwise[V alg.Uint](b *Builder, k ops.BitwiseOps, x, y Word[V]) Word[V] {
	var val alg.Alg[V]
	var right ast.Ref
	if k == ops.BCMPLMNT {
		val = alg.Bitwise(b.Sys, k, x.value, alg.Alg[V]{})
	} else {
		val = alg.Bitwise(b.Sys, k, x.value, y.value)
		right = y.ref
	}
	return Word[V]{ref: b.Arena.NewOp(k, x.ref, right), value: val}
}

func And[V alg.Uint](b *Builder, x, y Word[V]) Word[V]     { return bitwise(b, ops.BAND, x, y) }
func Or[V alg.Uint](b *Builder, x, y Word[V]) Word[V]      { return bitwise(b, ops.BOR, x, y) }
func Xor[V alg.Uint](b *Builder, x, y Word[V]) Word[V]     { return bitwise(b, ops.BXOR, x, y) }
func Same[V alg.Uint](b *Builder, x, y Word[V]) Word[V]    { return bitwise(b, ops.BSAME, x, y) }
func Not[V alg.Uint](b *Builder, x Word[V]) Word[V]        { return bitwise(b, ops.BCMPLMNT, x, Word[V]{}) }
func AddMod[V alg.Uint](b *Builder, x, y Word[V]) Word[V]  { return bitwise(b, ops.BADDMOD, x, y) }

func permute[V alg.Uint](b *Builder, k ops.BitwiseOps, x Word[V], n int) Word[V] {
	val := alg.Permute(b.Sys, k, x.value, n)
	return Word[V]{ref: b.Arena.NewShift(k, x.ref, n), value: val}
}

func Shl[V alg.Uint](b *Builder, x Word[V], n int) Word[V]  { return permute(b, ops.BSHL, x, n) }
func Shr[V alg.Uint](b *Builder, x Word[V], n int) Word[V]  { return permute(b, ops.BSHR, x, n) }
func Rotl[V alg.Uint](b *Builder, x Word[V], n int) Word[V] { return permute(b, ops.BROTL, x, n) }
func Rotr[V alg.Uint](b *Builder, x Word[V], n int) Word[V] { return permute(b, ops.BROTR, x, n) }

// SelectWord realises a fixed-width ternary a ? x : y the same way Select
// does for Bool: (x XOR y) masked by a broadcast of cond, XOR y. The mask
// is a Word[V] whose every bit term is literally cond's own boolean term
// (repeated, not duplicated as a fresh variable), so its concrete value is
// all-ones when cond is true and all-zero otherwise.
func SelectWord[V alg.Uint](b *Builder, cond Bool, x, y Word[V]) Word[V] {
	diff := Xor(b, x, y)
	mask := broadcastMask[V](b, cond)
	masked := And(b, mask, diff)
	return Xor(b, masked, y)
}

func broadcastMask[V alg.Uint](b *Builder, cond Bool) Word[V] {
	var zero V
	w := field.SizeBits(zero)
	terms := make([]r1cs.Term, w)
	t := cond.value.Terms[0]
	for i := range terms {
		terms[i] = t
	}
	var allOnes V = ^zero
	var val V
	if cond.Value() {
		val = allOnes
	}
	a := alg.Alg[V]{Value: val, Witness: cond.value.Witness, Terms: terms}
	return Word[V]{ref: b.Arena.NewConst(a), value: a}
}

// IsEqual/IsNotEqual compare two fixed-width values, producing a Bool
// (spec §4.8's comparison operators, realised as a "Foreign" node).
func IsEqual[V alg.Uint](b *Builder, x, y Word[V]) Bool {
	val := alg.Equality(b.Sys, ops.EQ, x.value, y.value)
	ref := b.Arena.NewForeign(ops.EQ, x.ref, y.ref)
	b.Arena.Node(ref).Value = val
	return Bool{ref: ref, value: val}
}

func IsNotEqual[V alg.Uint](b *Builder, x, y Word[V]) Bool {
	val := alg.Equality(b.Sys, ops.NEQ, x.value, y.value)
	ref := b.Arena.NewForeign(ops.NEQ, x.ref, y.ref)
	b.Arena.Node(ref).Value = val
	return Bool{ref: ref, value: val}
}

// AssertEqual asserts x == y bit-by-bit (spec §4.8 array-equality-style
// structural assertion specialised to a single fixed-width pair).
func AssertEqual[V alg.Uint](b *Builder, x, y Word[V]) {
	b.AssertTrue(IsEqual(b, x, y))
}

// BigIntVar is a circuit-level arbitrary-precision handle.
type BigIntVar struct {
	ref   ast.Ref
	value alg.BigInt
}

func (x BigIntVar) Value() *big.Int { return new(big.Int).Set(&x.value.Value) }

// BlessBigInt binds a fresh BigInt circuit variable to v.
func (b *Builder) BlessBigInt(v *big.Int, public bool) BigIntVar {
	val := alg.BlessBigInt(b.Sys, v, public)
	return BigIntVar{ref: b.Arena.NewVar(val), value: val}
}

// ConstBigInt wraps a compile-time BigInt constant.
func (b *Builder) ConstBigInt(v *big.Int) BigIntVar {
	val := alg.ConstBigInt(b.Sys, v)
	return BigIntVar{ref: b.Arena.NewConst(val), value: val}
}

func (b *Builder) scalar(k ops.ScalarOps, x, y BigIntVar) BigIntVar {
	val := alg.Scalar(b.Sys, k, x.value, y.value)
	return BigIntVar{ref: b.Arena.NewOp(k, x.ref, y.ref), value: val}
}

func (b *Builder) AddBig(x, y BigIntVar) BigIntVar { return b.scalar(ops.SADD, x, y) }
func (b *Builder) SubBig(x, y BigIntVar) BigIntVar { return b.scalar(ops.SSUB, x, y) }
func (b *Builder) MulBig(x, y BigIntVar) BigIntVar { return b.scalar(ops.SMUL, x, y) }

func (b *Builder) compareBig(k ops.ScalarCmp, x, y BigIntVar) Bool {
	val := alg.Compare(b.Sys, k, x.value, y.value)
	ref := b.Arena.NewForeign(k, x.ref, y.ref)
	b.Arena.Node(ref).Value = val
	return Bool{ref: ref, value: val}
}

func (b *Builder) EqBig(x, y BigIntVar) Bool  { return b.compareBig(ops.CEQ, x, y) }
func (b *Builder) NeqBig(x, y BigIntVar) Bool { return b.compareBig(ops.CNEQ, x, y) }
func (b *Builder) LtBig(x, y BigIntVar) Bool  { return b.compareBig(ops.CLT, x, y) }
func (b *Builder) LeBig(x, y BigIntVar) Bool  { return b.compareBig(ops.CLE, x, y) }
func (b *Builder) GtBig(x, y BigIntVar) Bool  { return b.compareBig(ops.CGT, x, y) }
func (b *Builder) GeBig(x, y BigIntVar) Bool  { return b.compareBig(ops.CGE, x, y) }

// AssertArrayEqual recurses structurally over two same-length arrays of
// fixed-width values (spec §4.8 "array equality/inequality recurses
// structurally"), asserting every element pair is equal.
func AssertArrayEqual[V alg.Uint](b *Builder, xs, ys []Word[V]) {
	if len(xs) != len(ys) {
		panic("circuit: AssertArrayEqual called on arrays of different length")
	}
	for i := range xs {
		AssertEqual(b, xs[i], ys[i])
	}
}

// IsArrayEqual is the non-asserting counterpart, folding per-element
// equality with AND.
func IsArrayEqual[V alg.Uint](b *Builder, xs, ys []Word[V]) Bool {
	if len(xs) != len(ys) {
		panic("circuit: IsArrayEqual called on arrays of different length")
	}
	if len(xs) == 0 {
		return b.ConstBool(true)
	}
	result := IsEqual(b, xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		result = b.And(result, IsEqual(b, xs[i], ys[i]))
	}
	return result
}

// CheckpointInput freezes the public-input prefix (spec §4.7).
func (b *Builder) CheckpointInput() { b.Sys.CheckpointInput() }
