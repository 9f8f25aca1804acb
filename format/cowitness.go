package format

import (
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/jancarlsson/snarkfront/r1cs"
)

// Cowitness is spec §6's public-input artefact: the witness prefix (the
// first NbPublic variables) plus, for big-int variables, an auxiliary
// vector of decimal-string encodings keyed by variable ID (since a 128-bit
// value may not round-trip through a backend's native public-input
// encoding, see alg.BlessBigInt).
type Cowitness struct {
	Prefix  RawWitness
	Decimal map[int]string
}

// WriteCowitness serialises sys's public-input checkpoint.
func WriteCowitness(w io.Writer, sys *r1cs.System) (err error) {
	defer func() {
		if err != nil {
			logger.Error().Err(err).Msg("WriteCowitness failed")
		}
	}()
	m := sys.WitnessMap()
	n := sys.NbPublic()

	bw := bitio.NewWriter(w)
	if err := writeUvarint(bw, uint64(n)); err != nil {
		return err
	}
	decimals := make(map[int]string)
	for id := 1; id <= n; id++ {
		v, ok := m[id]
		if !ok {
			return fmt.Errorf("format: public variable %d missing from witness map", id)
		}
		b := v.BigInt().Bytes()
		if err := writeUvarint(bw, uint64(len(b))); err != nil {
			return err
		}
		for _, by := range b {
			if err := bw.WriteByte(by); err != nil {
				return fmt.Errorf("format: writing cowitness value: %w", err)
			}
		}
		if dec, ok := sys.Cowitness(id); ok {
			decimals[id] = dec
		}
	}

	if err := writeUvarint(bw, uint64(len(decimals))); err != nil {
		return err
	}
	for id, dec := range decimals {
		if err := writeUvarint(bw, uint64(id)); err != nil {
			return err
		}
		if err := writeUvarint(bw, uint64(len(dec))); err != nil {
			return err
		}
		for _, ch := range []byte(dec) {
			if err := bw.WriteByte(ch); err != nil {
				return fmt.Errorf("format: writing cowitness decimal: %w", err)
			}
		}
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("format: flushing cowitness stream: %w", err)
	}
	return nil
}

// ReadCowitness parses a stream written by WriteCowitness.
func ReadCowitness(r io.Reader) (_ Cowitness, err error) {
	defer func() {
		if err != nil {
			logger.Error().Err(err).Msg("ReadCowitness failed")
		}
	}()
	br := bitio.NewReader(r)
	n, err := readUvarint(br)
	if err != nil {
		return Cowitness{}, err
	}

	prefix := RawWitness{IDs: make([]int, n), Values: make([][]byte, n)}
	for i := uint64(0); i < n; i++ {
		prefix.IDs[i] = int(i) + 1
		l, err := readUvarint(br)
		if err != nil {
			return Cowitness{}, err
		}
		buf := make([]byte, l)
		for j := range buf {
			b, err := br.ReadByte()
			if err != nil {
				return Cowitness{}, fmt.Errorf("format: reading cowitness value: %w", err)
			}
			buf[j] = b
		}
		prefix.Values[i] = buf
	}

	nDec, err := readUvarint(br)
	if err != nil {
		return Cowitness{}, err
	}
	decimals := make(map[int]string, nDec)
	for i := uint64(0); i < nDec; i++ {
		id, err := readUvarint(br)
		if err != nil {
			return Cowitness{}, err
		}
		l, err := readUvarint(br)
		if err != nil {
			return Cowitness{}, err
		}
		buf := make([]byte, l)
		for j := range buf {
			b, err := br.ReadByte()
			if err != nil {
				return Cowitness{}, fmt.Errorf("format: reading cowitness decimal: %w", err)
			}
			buf[j] = b
		}
		decimals[int(id)] = string(buf)
	}

	return Cowitness{Prefix: prefix, Decimal: decimals}, nil
}
