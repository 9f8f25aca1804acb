package r1cs

import (
	"testing"

	"github.com/jancarlsson/snarkfront/field/frbn254"
)

// TestConstantOnlyNoConstraint is spec §8's "for any constant-only
// expression, no constraint is emitted."
func TestConstantOnlyNoConstraint(t *testing.T) {
	s := New(frbn254.Zero, Config{})
	x := s.CreateConstant(s.BoolTo(true))
	y := s.CreateConstant(s.BoolTo(false))

	before := s.NbConstraints()
	z := s.Gate2(GateAnd, x, y, true, false)
	if s.NbConstraints() != before {
		t.Fatalf("constant AND emitted %d new constraints, want 0", s.NbConstraints()-before)
	}
	if z.IsVariable() {
		t.Fatal("constant-only AND produced a variable term")
	}
}

// TestIdentityCaseNoNewVariable is spec §8's "no new variable is
// introduced in identity cases": AND with a true constant returns the
// variable operand itself.
func TestIdentityCaseNoNewVariable(t *testing.T) {
	s := New(frbn254.Zero, Config{})
	x := s.CreateVariable(s.BoolTo(true), true)
	c := s.CreateConstant(s.BoolTo(true))

	before := s.CounterID()
	z := s.Gate2(GateAnd, x, c, true, true)
	if s.CounterID() != before {
		t.Fatalf("identity-case AND allocated a new variable ID")
	}
	if z.ID != x.ID {
		t.Fatalf("identity-case AND(x,true) = term %d, want the original variable %d", z.ID, x.ID)
	}
}

// TestSplitConstraintCorrectness is spec §8's "for all v,
// sum(2^i*valueBits(v)[i]) = v in the field", checked via GateSplit +
// Audit.
func TestSplitConstraintCorrectness(t *testing.T) {
	s := New(frbn254.Zero, Config{})
	one := s.Zero().One()
	two := s.Zero().SetUint64(2)
	three := s.Zero().SetUint64(3)

	x := s.CreateVariable(three, true) // value 3 = 0b011
	bits := []Term{
		s.CreateVariable(one, true),
		s.CreateVariable(one, true),
		s.CreateVariable(s.Zero(), true),
	}
	_ = two
	s.GateSplit(bits, x)

	if err := s.Audit(); err != nil {
		t.Fatalf("split constraint audit failed: %v", err)
	}
}

// TestBooleanityScaledTerm checks that Term.Scale gives a term its own
// non-unit coefficient instead of silently keeping 1, and that a
// booleanity constraint on the unscaled variable passes Audit.
func TestBooleanityScaledTerm(t *testing.T) {
	s := New(frbn254.Zero, Config{})
	one := s.Zero().One()
	two := s.Zero().SetUint64(2)

	x := s.CreateVariable(one, true)
	s.AddBooleanity(x)

	scaled := x.Scale(two) // coefficient 2, same variable ID
	if scaled.Coeff.Equal(one) {
		t.Fatal("Scale(2) unexpectedly left the coefficient at 1")
	}

	if err := s.Audit(); err != nil {
		t.Fatalf("booleanity constraint audit failed: %v", err)
	}
}
