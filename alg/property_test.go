package alg

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/jancarlsson/snarkfront/field"
	"github.com/jancarlsson/snarkfront/field/frbn254"
	"github.com/jancarlsson/snarkfront/internal/testutil"
	"github.com/jancarlsson/snarkfront/ops"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// TestPropertyAddModMatchesWraparound is spec §8's invariant "for a
// fixed-width add-mod expression with operands x, y: the emitted value
// equals (x + y) mod 2^W, and the witness's bit split's low W bits equal
// that value."
func TestPropertyAddModMatchesWraparound(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(testutil.Seed64(0xADD0))
	properties := gopter.NewProperties(parameters)

	properties.Property("addmod(x,y) == x+y mod 2^32, audit passes", prop.ForAll(
		func(x, y uint32) bool {
			s := r1cs.New(frbn254.Zero, r1cs.Config{})
			xv := Bless(s, x, true)
			yv := Bless(s, y, true)
			sum := Bitwise(s, ops.BADDMOD, xv, yv)

			if sum.Value != x+y {
				return false
			}
			bits := field.ValueBits(sum.Value)
			for i, bit := range bits {
				got := s.Witness(sum.Terms[i].ID)
				want := field.BoolTo(bit != 0, s.Zero())
				if !got.Equal(want) {
					return false
				}
			}
			return s.Audit() == nil
		},
		gen.UInt32(),
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

// TestPropertyRoundTripBless is spec §8's "round-trip: blessing a
// variable from value v, then reading its witness as a field element and
// its split bits, reproduces v."
func TestPropertyRoundTripBless(t *testing.T) {
	parameters := gopter.DefaultTestParametersWithSeed(testutil.Seed64(0xB1E55))
	properties := gopter.NewProperties(parameters)

	properties.Property("bless round-trips through witness and bit split", prop.ForAll(
		func(v uint8) bool {
			s := r1cs.New(frbn254.Zero, r1cs.Config{})
			blessed := Bless(s, v, true)

			bits := make([]int, len(blessed.Terms))
			for i, t := range blessed.Terms {
				w := s.Witness(t.ID)
				if w.Equal(s.Zero().One()) {
					bits[i] = 1
				}
			}
			recombined, _ := field.BitsValue[uint8](bits)
			return recombined == v
		},
		gen.UInt8(),
	))

	properties.TestingRun(t)
}
