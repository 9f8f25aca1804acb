package alg

import (
	"math/big"
	"testing"

	"github.com/jancarlsson/snarkfront/field/frbn254"
	"github.com/jancarlsson/snarkfront/ops"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// TestBigIntCompare127v128 is spec §8 scenario 5: x = 2^127-1, y = 2^127;
// x < y must witness 1, x == y must witness 0, x >= y must witness 0.
func TestBigIntCompare127v128(t *testing.T) {
	s := r1cs.New(frbn254.Zero, r1cs.Config{})

	x := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	y := new(big.Int).Lsh(big.NewInt(1), 127)

	xv := BlessBigInt(s, x, true)
	yv := BlessBigInt(s, y, true)

	if lt := Compare(s, ops.CLT, xv, yv); lt.Value != true {
		t.Fatalf("x < y = %v, want true", lt.Value)
	}
	if eq := Compare(s, ops.CEQ, xv, yv); eq.Value != false {
		t.Fatalf("x == y = %v, want false", eq.Value)
	}
	if ge := Compare(s, ops.CGE, xv, yv); ge.Value != false {
		t.Fatalf("x >= y = %v, want false", ge.Value)
	}

	if err := s.Audit(); err != nil {
		t.Fatalf("constraint audit failed: %v", err)
	}
}
