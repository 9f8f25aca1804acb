// Package r1cs implements the R1CS constraint-emission gadgets (spec
// §4.6, "Rank1Ops") and the per-task accumulator that owns variable IDs,
// the constraint list and the witness map (spec §4.7).
package r1cs

import "github.com/jancarlsson/snarkfront/field"

// Term is the R1 term from spec §3: either a constant c·x0 against the
// reserved identity variable x0=1 (ID == 0), or a variable reference
// xi·1 with ID >= 1.
type Term struct {
	Coeff field.Fr
	ID    int
}

// IsVariable reports whether the term references a variable (ID >= 1)
// rather than the constant identity wire.
func (t Term) IsVariable() bool { return t.ID >= 1 }

// ZeroTerm reports whether the term is the compile-time constant zero.
func (t Term) ZeroTerm() bool { return t.ID == 0 && t.Coeff.IsZero() }

// Scale returns a term equal to t multiplied by c.
func (t Term) Scale(c field.Fr) Term {
	return Term{Coeff: t.Coeff.Mul(c), ID: t.ID}
}

// Combination is a formal linear combination sum(a_j * x_j) over Fr.
type Combination []Term

// Const builds a length-1 combination holding a compile-time constant.
func Const(v field.Fr) Combination { return Combination{{Coeff: v, ID: 0}} }

// Single builds a length-1 combination holding a single term verbatim.
func Single(t Term) Combination { return Combination{t} }

// Constraint is the R1 triple (A, B, C) meaning A*B = C (spec §3).
type Constraint struct {
	A, B, C Combination
}
