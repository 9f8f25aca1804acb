// Package format implements the serialised-artefact layer from spec §6:
// the constraint system (chunked into fixed-size files with a numeric
// suffix, the way the teacher's query-file writers split PPZK query
// vectors across files), the witness (a length-prefixed vector of field
// elements), the public-input cowitness (the witness prefix plus a
// decimal-string auxiliary vector for big-int variables), and a hexdump
// utility for inspecting any of the above.
//
// Every function here reports I/O and encoding failures as a plain error
// return (spec §7 category 2: "reported as a boolean ok/error return on
// the operation that touched the stream") rather than panicking — this is
// the one package in the module that crosses the core/boundary line.
package format

import (
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"

	"github.com/jancarlsson/snarkfront/r1cs"
)

// wireTerm is the sparse (idx, coeff) pair spec §6 specifies for a
// serialised R1 combination; coeff is stored as its canonical big-endian
// byte representation since field.Fr is an opaque interface.
type wireTerm struct {
	ID    int    `cbor:"1,keyasint"`
	Coeff []byte `cbor:"2,keyasint"`
}

type wireCombination struct {
	Terms []wireTerm `cbor:"1,keyasint"`
}

type wireConstraint struct {
	A wireCombination `cbor:"1,keyasint"`
	B wireCombination `cbor:"2,keyasint"`
	C wireCombination `cbor:"3,keyasint"`
}

func toWireCombination(c r1cs.Combination) wireCombination {
	out := wireCombination{Terms: make([]wireTerm, len(c))}
	for i, t := range c {
		out.Terms[i] = wireTerm{ID: t.ID, Coeff: t.Coeff.BigInt().Bytes()}
	}
	return out
}

func toWireConstraint(c r1cs.Constraint) wireConstraint {
	return wireConstraint{A: toWireCombination(c.A), B: toWireCombination(c.B), C: toWireCombination(c.C)}
}

// WriteConstraintFiles cuts constraints into files of at most maxPerFile
// constraints each, named prefix0, prefix1, ... (spec §6: "cut into
// fixed-size files with a suffix numerical index", grounded on the
// teacher's `writeFiles(outfile, blocknum)` query-vector writers). Each
// file is a CBOR-encoded array of wireConstraint records.
func WriteConstraintFiles(prefix string, maxPerFile int, constraints []r1cs.Constraint) (err error) {
	defer func() {
		if err != nil {
			logger.Error().Err(err).Str("prefix", prefix).Msg("WriteConstraintFiles failed")
		}
	}()
	if maxPerFile <= 0 {
		return fmt.Errorf("format: maxPerFile must be positive, got %d", maxPerFile)
	}
	for start, file := 0, 0; start < len(constraints); start, file = start+maxPerFile, file+1 {
		end := start + maxPerFile
		if end > len(constraints) {
			end = len(constraints)
		}
		chunk := make([]wireConstraint, end-start)
		for i, c := range constraints[start:end] {
			chunk[i] = toWireConstraint(c)
		}
		if err := writeCBORFile(fmt.Sprintf("%s%d", prefix, file), chunk); err != nil {
			return err
		}
	}
	return nil
}

// ReadConstraintFile reads a single chunk previously written by
// WriteConstraintFiles. It cannot reconstruct field.Fr values on its own
// (the abstract field type has no generic decoder); callers rehydrate
// Coeff via their concrete field's SetBigInt.
func ReadConstraintFile(path string) (_ []RawConstraint, err error) {
	defer func() {
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("ReadConstraintFile failed")
		}
	}()
	var chunk []wireConstraint
	if err := readCBORFile(path, &chunk); err != nil {
		return nil, err
	}
	out := make([]RawConstraint, len(chunk))
	for i, c := range chunk {
		out[i] = RawConstraint{A: toRawCombination(c.A), B: toRawCombination(c.B), C: toRawCombination(c.C)}
	}
	return out, nil
}

// RawTerm and RawCombination are the decoded, field-library-agnostic
// mirror of r1cs.Term/Combination: Coeff is left as big-endian bytes for
// the caller to feed into their concrete field.Fr.SetBigInt.
type RawTerm struct {
	ID    int
	Coeff []byte
}

type RawCombination []RawTerm

type RawConstraint struct {
	A, B, C RawCombination
}

func toRawCombination(c wireCombination) RawCombination {
	out := make(RawCombination, len(c.Terms))
	for i, t := range c.Terms {
		out[i] = RawTerm{ID: t.ID, Coeff: t.Coeff}
	}
	return out
}

func writeCBORFile(path string, v interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("format: creating %s: %w", path, err)
	}
	defer f.Close()
	enc := cbor.NewEncoder(f)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("format: encoding %s: %w", path, err)
	}
	return nil
}

func readCBORFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("format: reading %s: %w", path, err)
	}
	if err := cbor.Unmarshal(data, v); err != nil {
		return fmt.Errorf("format: decoding %s: %w", path, err)
	}
	return nil
}
