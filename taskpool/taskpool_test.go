package taskpool

import (
	"context"
	"testing"

	"github.com/jancarlsson/snarkfront/circuit"
	"github.com/jancarlsson/snarkfront/field/frbn254"
	"github.com/jancarlsson/snarkfront/r1cs"
)

func TestBuildAllIndependentAccumulators(t *testing.T) {
	jobs := make([]Build, 8)
	for i := range jobs {
		v := uint32(i)
		jobs[i] = func(b *circuit.Builder) (interface{}, error) {
			x := circuit.BlessWord(b, v, true)
			y := circuit.BlessWord(b, v+1, true)
			b.CheckpointInput()
			return circuit.AddMod(b, x, y).Value(), nil
		}
	}

	results, err := BuildAll(context.Background(), frbn254.Zero, r1cs.Config{}, jobs)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	for i, r := range results {
		want := uint32(i) + uint32(i) + 1
		if r.(uint32) != want {
			t.Fatalf("job %d result = %v, want %d", i, r, want)
		}
	}
}
