package format

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jancarlsson/snarkfront/circuit"
	"github.com/jancarlsson/snarkfront/field/frbn254"
	"github.com/jancarlsson/snarkfront/r1cs"
)

func buildSampleCircuit(t *testing.T) *circuit.Builder {
	t.Helper()
	b := circuit.New(frbn254.Zero, r1cs.Config{})
	a := b.BlessBool(true, true)
	x := b.BlessBool(false, true)
	b.AssertTrue(b.Xor(a, x))
	b.CheckpointInput()
	return b
}

func TestWriteConstraintFilesChunking(t *testing.T) {
	b := buildSampleCircuit(t)
	constraints := b.Sys.Constraints()
	if len(constraints) == 0 {
		t.Fatal("expected at least one constraint in the sample circuit")
	}

	dir := t.TempDir()
	prefix := filepath.Join(dir, "constraints.")
	if err := WriteConstraintFiles(prefix, 1, constraints); err != nil {
		t.Fatalf("WriteConstraintFiles: %v", err)
	}

	var total int
	for i := 0; ; i++ {
		path := prefix + strconv.Itoa(i)
		if _, err := os.Stat(path); err != nil {
			break
		}
		chunk, err := ReadConstraintFile(path)
		if err != nil {
			t.Fatalf("ReadConstraintFile(%s): %v", path, err)
		}
		total += len(chunk)
	}
	if total != len(constraints) {
		t.Fatalf("read back %d constraints, want %d", total, len(constraints))
	}
}

// TestConstraintRoundTripContent is a table-driven check that A, B and C
// survive WriteConstraintFiles/ReadConstraintFile as distinct combinations
// rather than collapsing onto one CBOR map key (the shape of bug that
// len(chunk)-only assertions in TestWriteConstraintFilesChunking cannot
// catch).
func TestConstraintRoundTripContent(t *testing.T) {
	zero := frbn254.Zero
	term := func(id int, v uint64) r1cs.Term {
		return r1cs.Term{Coeff: zero.SetUint64(v), ID: id}
	}

	cases := []struct {
		name string
		c    r1cs.Constraint
	}{
		{
			name: "distinct A/B/C",
			c: r1cs.Constraint{
				A: r1cs.Combination{term(1, 2)},
				B: r1cs.Combination{term(2, 3)},
				C: r1cs.Combination{term(3, 5)},
			},
		},
		{
			name: "multi-term combinations",
			c: r1cs.Constraint{
				A: r1cs.Combination{term(1, 7), term(2, 11)},
				B: r1cs.Combination{term(3, 13)},
				C: r1cs.Combination{term(4, 17), term(5, 19), term(6, 23)},
			},
		},
	}

	dir := t.TempDir()
	for i, tc := range cases {
		prefix := filepath.Join(dir, strconv.Itoa(i)+".")
		if err := WriteConstraintFiles(prefix, 10, []r1cs.Constraint{tc.c}); err != nil {
			t.Fatalf("%s: WriteConstraintFiles: %v", tc.name, err)
		}
		got, err := ReadConstraintFile(prefix + "0")
		if err != nil {
			t.Fatalf("%s: ReadConstraintFile: %v", tc.name, err)
		}
		if len(got) != 1 {
			t.Fatalf("%s: got %d constraints, want 1", tc.name, len(got))
		}
		want := RawConstraint{
			A: toRawCombination(toWireCombination(tc.c.A)),
			B: toRawCombination(toWireCombination(tc.c.B)),
			C: toRawCombination(toWireCombination(tc.c.C)),
		}
		if diff := cmp.Diff(want, got[0]); diff != "" {
			t.Fatalf("%s: round-tripped constraint mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestWitnessRoundTrip(t *testing.T) {
	b := buildSampleCircuit(t)

	var buf bytes.Buffer
	if err := WriteWitness(&buf, b.Sys); err != nil {
		t.Fatalf("WriteWitness: %v", err)
	}

	got, err := ReadWitness(&buf)
	if err != nil {
		t.Fatalf("ReadWitness: %v", err)
	}

	want := b.Sys.WitnessMap()
	if len(got.IDs) != len(want) {
		t.Fatalf("got %d witness entries, want %d", len(got.IDs), len(want))
	}
	for i, id := range got.IDs {
		fr, ok := want[id]
		if !ok {
			t.Fatalf("unexpected id %d in round-tripped witness", id)
		}
		if !bytes.Equal(got.Values[i], fr.BigInt().Bytes()) {
			t.Fatalf("id %d: value mismatch", id)
		}
	}
}

func TestCowitnessRoundTrip(t *testing.T) {
	b := buildSampleCircuit(t)

	var buf bytes.Buffer
	if err := WriteCowitness(&buf, b.Sys); err != nil {
		t.Fatalf("WriteCowitness: %v", err)
	}

	got, err := ReadCowitness(&buf)
	if err != nil {
		t.Fatalf("ReadCowitness: %v", err)
	}
	if len(got.Prefix.IDs) != b.Sys.NbPublic() {
		t.Fatalf("got %d public entries, want %d", len(got.Prefix.IDs), b.Sys.NbPublic())
	}
}

func TestDumpHex(t *testing.T) {
	var buf bytes.Buffer
	if err := DumpHex(&buf, []byte("hello, world")); err != nil {
		t.Fatalf("DumpHex: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty hex dump output")
	}
}
