// Package alg implements the per-type algebraic value record Alg<V> from
// spec §3/§4.4: an application value bound to its field witness and its
// R1CS term list (either a single scalar term or one term per bit), plus
// the argScalar/argBits coercions and the per-type operator dispatch that
// realises LogicalOps, BitwiseOps, ScalarOps, EqualityCmp and ScalarCmp.
//
// The coercion helpers (argScalar/argBits) are specified in spec §4.7 as
// accumulator (r1cs.System) methods; they are implemented here instead,
// since they are generic over the application value type and sit more
// naturally next to Alg than inside the accumulator.
package alg

import (
	"github.com/jancarlsson/snarkfront/field"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// Word is the fixed-width unsigned subset of application values.
type Word interface {
	uint8 | uint32 | uint64
}

// Alg is the per-type algebraic record from spec §3: the bool and
// fixed-width specialisations share this shape. BigInt (alg/bigint.go) has
// the same shape but cannot join this type parameter (big.Int is not a
// comparable scalar), so it is defined as its own parallel struct.
type Alg[V Word | bool] struct {
	Value   V
	Witness field.Fr
	Terms   []r1cs.Term // len==1 (scalar form) or len==field.SizeBits(Value) (bit form)
}

// IsScalarForm reports whether a's terms are currently the single-term
// scalar representation.
func (a Alg[V]) IsScalarForm() bool { return len(a.Terms) == 1 }

func valueToFr[V Word | bool](zero field.Fr, v V) field.Fr {
	switch t := any(v).(type) {
	case bool:
		return field.BoolTo(t, zero)
	case uint8:
		return zero.SetUint64(uint64(t))
	case uint32:
		return zero.SetUint64(uint64(t))
	case uint64:
		return zero.SetUint64(t)
	default:
		panic("alg: unsupported value type")
	}
}

// Bless binds a fresh circuit value to v (spec §4.4 constructor 1). If
// public, every bit becomes a boolean-constrained variable in the public
// prefix; otherwise every bit is a compile-time constant and no constraint
// is emitted (invariant I5).
func Bless[V Word | bool](s *r1cs.System, v V, public bool) Alg[V] {
	bitVals := field.ValueBits(v)
	terms := make([]r1cs.Term, len(bitVals))
	for i, b := range bitVals {
		bv := field.BoolTo(b != 0, s.Zero())
		if public {
			t := s.CreateVariable(bv, true)
			s.AddBooleanity(t)
			terms[i] = t
		} else {
			terms[i] = s.CreateConstant(bv)
		}
	}
	return Alg[V]{Value: v, Witness: valueToFr(s.Zero(), v), Terms: terms}
}

// Const binds a compile-time constant (spec §4.4 constructor 2): same
// shape as Bless, but every term is constant regardless of the public flag.
func Const[V Word | bool](s *r1cs.System, v V) Alg[V] {
	bitVals := field.ValueBits(v)
	terms := make([]r1cs.Term, len(bitVals))
	for i, b := range bitVals {
		terms[i] = s.CreateConstant(field.BoolTo(b != 0, s.Zero()))
	}
	return Alg[V]{Value: v, Witness: valueToFr(s.Zero(), v), Terms: terms}
}

// ArgScalar coerces a to scalar-term form (spec §4.7 argScalar), emitting
// the recombination split constraint sum(2^i*b_i)=x when a is currently in
// bit form. A no-op when a is already scalar (invariant I5: no redundant
// constraint).
func (a Alg[V]) ArgScalar(s *r1cs.System) Alg[V] {
	if a.IsScalarForm() {
		return a
	}
	a.Terms = []r1cs.Term{argScalar(s, a.Witness, a.Terms)}
	return a
}

// ArgBits coerces a to bit-vector form (spec §4.7 argBits), splitting its
// scalar term into field.SizeBits(a.Value) boolean-constrained bit terms.
// A no-op when a is already in bit form.
func (a Alg[V]) ArgBits(s *r1cs.System) Alg[V] {
	if len(a.Terms) == field.SizeBits(a.Value) {
		return a
	}
	bitVals := field.ValueBits(a.Value)
	a.Terms = argBits(s, a.Terms[0], bitVals)
	return a
}

func toBoolSlice(bits []int) []bool {
	out := make([]bool, len(bits))
	for i, b := range bits {
		out[i] = b != 0
	}
	return out
}
