package diagnostics

import (
	"testing"

	"github.com/jancarlsson/snarkfront/circuit"
	"github.com/jancarlsson/snarkfront/field/frbn254"
	"github.com/jancarlsson/snarkfront/r1cs"
)

func TestExportCounters(t *testing.T) {
	b := circuit.New(frbn254.Zero, r1cs.Config{})
	start := b.Sys.Tag("start")
	a := b.BlessBool(true, true)
	x := b.BlessBool(false, true)
	b.AssertTrue(b.Xor(a, x))
	end := b.Sys.Tag("end")
	b.Sys.AddCounter(start, end)

	p := ExportCounters(b.Sys.Counters())
	if len(p.Sample) != 1 {
		t.Fatalf("got %d samples, want 1", len(p.Sample))
	}
	if p.Sample[0].Value[0] <= 0 {
		t.Fatalf("expected a positive constraint count, got %d", p.Sample[0].Value[0])
	}
}

func TestFlagProgressCancel(t *testing.T) {
	p := &FlagProgress{}
	if p.Cancelled() {
		t.Fatal("expected not cancelled initially")
	}
	p.Cancel()
	if !p.Cancelled() {
		t.Fatal("expected cancelled after Cancel")
	}
}
