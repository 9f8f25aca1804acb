package format

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/icza/bitio"
	"github.com/ronanh/intcomp"

	"github.com/jancarlsson/snarkfront/r1cs"
)

// WriteWitness serialises sys's full witness map (spec §6: "length-prefixed
// vector of Fr for the full variable set"). Variable IDs are written as
// delta-compressed integers (ronanh/intcomp), since spec §5 guarantees
// "variable IDs are assigned in program order and never reused" — the
// sorted ID sequence is therefore already small, monotonically increasing
// deltas, exactly the shape that library's block codec compresses well.
// Each Fr value follows as a length-prefixed big-endian byte string.
func WriteWitness(w io.Writer, sys *r1cs.System) (err error) {
	defer func() {
		if err != nil {
			logger.Error().Err(err).Msg("WriteWitness failed")
		}
	}()
	m := sys.WitnessMap()
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	deltas := make([]uint32, len(ids))
	prev := 0
	for i, id := range ids {
		deltas[i] = uint32(id - prev)
		prev = id
	}
	packed := intcomp.CompressUint32(deltas, nil)

	bw := bitio.NewWriter(w)
	if err := writeUvarint(bw, uint64(len(ids))); err != nil {
		return err
	}
	if err := writeUvarint(bw, uint64(len(packed))); err != nil {
		return err
	}
	for _, word := range packed {
		if err := bw.WriteBits(uint64(word), 32); err != nil {
			return fmt.Errorf("format: writing witness id block: %w", err)
		}
	}
	for _, id := range ids {
		b := m[id].BigInt().Bytes()
		if err := writeUvarint(bw, uint64(len(b))); err != nil {
			return err
		}
		for _, by := range b {
			if err := bw.WriteByte(by); err != nil {
				return fmt.Errorf("format: writing witness value: %w", err)
			}
		}
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("format: flushing witness stream: %w", err)
	}
	return nil
}

// RawWitness is the decoded, field-library-agnostic witness: variable IDs
// paired with their big-endian coefficient bytes, in ascending ID order.
// Callers rehydrate each value via their concrete field.Fr.SetBigInt.
type RawWitness struct {
	IDs    []int
	Values [][]byte
}

// ReadWitness parses a stream written by WriteWitness.
func ReadWitness(r io.Reader) (_ RawWitness, err error) {
	defer func() {
		if err != nil {
			logger.Error().Err(err).Msg("ReadWitness failed")
		}
	}()
	br := bitio.NewReader(r)
	nIDs, err := readUvarint(br)
	if err != nil {
		return RawWitness{}, err
	}
	nPacked, err := readUvarint(br)
	if err != nil {
		return RawWitness{}, err
	}
	packed := make([]uint32, nPacked)
	for i := range packed {
		v, err := br.ReadBits(32)
		if err != nil {
			return RawWitness{}, fmt.Errorf("format: reading witness id block: %w", err)
		}
		packed[i] = uint32(v)
	}
	deltas := intcomp.UncompressUint32(packed, nil)
	if uint64(len(deltas)) != nIDs {
		return RawWitness{}, fmt.Errorf("format: witness id count mismatch: got %d, want %d", len(deltas), nIDs)
	}

	out := RawWitness{IDs: make([]int, nIDs), Values: make([][]byte, nIDs)}
	prev := 0
	for i, d := range deltas {
		prev += int(d)
		out.IDs[i] = prev
	}
	for i := range out.IDs {
		n, err := readUvarint(br)
		if err != nil {
			return RawWitness{}, err
		}
		buf := make([]byte, n)
		for j := range buf {
			b, err := br.ReadByte()
			if err != nil {
				return RawWitness{}, fmt.Errorf("format: reading witness value: %w", err)
			}
			buf[j] = b
		}
		out.Values[i] = buf
	}
	return out, nil
}

func writeUvarint(bw *bitio.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	for i := 0; i < n; i++ {
		if err := bw.WriteByte(buf[i]); err != nil {
			return fmt.Errorf("format: writing varint: %w", err)
		}
	}
	return nil
}

func readUvarint(br *bitio.Reader) (uint64, error) {
	return binary.ReadUvarint(byteReader{br})
}

// byteReader adapts bitio.Reader to io.ByteReader for binary.ReadUvarint.
type byteReader struct{ br *bitio.Reader }

func (r byteReader) ReadByte() (byte, error) { return r.br.ReadByte() }
