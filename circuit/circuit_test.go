package circuit

import (
	"testing"

	"github.com/jancarlsson/snarkfront/field/frbn254"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// TestBooleanCircuitSatisfies is spec §8 scenario 1: two public booleans
// a, b; assert a XOR b == true. Witness (a=1, b=0) must satisfy the
// emitted constraint.
func TestBooleanCircuitSatisfies(t *testing.T) {
	b := New(frbn254.Zero, r1cs.Config{})
	a := b.BlessBool(true, true)
	x := b.BlessBool(false, true)
	b.AssertTrue(b.Xor(a, x))

	if err := b.Sys.Audit(); err != nil {
		t.Fatalf("expected (a=1, b=0) to satisfy a XOR b == true, got: %v", err)
	}
}

// TestBooleanCircuitViolates is the negative half of scenario 1: witness
// (a=1, b=1) must not satisfy the same assertion.
func TestBooleanCircuitViolates(t *testing.T) {
	b := New(frbn254.Zero, r1cs.Config{})
	a := b.BlessBool(true, true)
	x := b.BlessBool(true, true)
	b.AssertTrue(b.Xor(a, x))

	if err := b.Sys.Audit(); err == nil {
		t.Fatal("expected (a=1, b=1) to violate a XOR b == true")
	}
}

// TestWord32RotrXorShl is spec §8 scenario 2: y = ROTR(x,7) XOR SHL(x,3)
// for x = 0x12345678 must equal 0xB00091BF, and the bit split of y must
// reproduce that value.
func TestWord32RotrXorShl(t *testing.T) {
	b := New(frbn254.Zero, r1cs.Config{})
	x := BlessWord[uint32](b, 0x12345678, true)

	y := Xor(b, Rotr(b, x, 7), Shl(b, x, 3))

	const want uint32 = 0xB00091BF
	if y.Value() != want {
		t.Fatalf("y = %08x, want %08x", y.Value(), want)
	}
	if err := b.Sys.Audit(); err != nil {
		t.Fatalf("constraint audit failed: %v", err)
	}
}
