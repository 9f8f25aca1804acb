package format

import (
	"fmt"
	"io"
)

// DumpHex prints data in the classic hexdump -C layout (offset, sixteen
// hex bytes, ASCII gutter) — the Go-idiom equivalent of the teacher's
// HexDumper (grounded on original_source/HexDumper.hpp's "print as text
// characters" side-by-side presentation).
func DumpHex(w io.Writer, data []byte) error {
	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		row := data[off:end]

		if _, err := fmt.Fprintf(w, "%08x  ", off); err != nil {
			return err
		}
		for i := 0; i < 16; i++ {
			if i < len(row) {
				if _, err := fmt.Fprintf(w, "%02x ", row[i]); err != nil {
					return err
				}
			} else if _, err := fmt.Fprint(w, "   "); err != nil {
				return err
			}
			if i == 7 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprint(w, " |"); err != nil {
			return err
		}
		for _, b := range row {
			ch := byte('.')
			if b >= 0x20 && b < 0x7f {
				ch = b
			}
			if _, err := fmt.Fprintf(w, "%c", ch); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "|"); err != nil {
			return err
		}
	}
	return nil
}
