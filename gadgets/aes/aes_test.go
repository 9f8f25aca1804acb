package aes

import (
	"testing"

	"github.com/jancarlsson/snarkfront/circuit"
	"github.com/jancarlsson/snarkfront/field/frbn254"
	"github.com/jancarlsson/snarkfront/r1cs"
)

// TestAES128RoundTrip is the spec §8 end-to-end scenario: key
// 000102030405060708090A0B0C0D0E0F encrypting plaintext
// 00112233445566778899AABBCCDDEEFF must produce ciphertext
// 69C4E0D86A7B0430D8CDB78070B4C55A, and decrypting the result must recover
// the plaintext, with every constraint the gadget emitted satisfied by its
// own witness.
func TestAES128RoundTrip(t *testing.T) {
	b := circuit.New(frbn254.Zero, r1cs.Config{})

	plaintext := [16]uint8{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	key := [16]uint8{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	wantCipher := [16]uint8{0x69, 0xc4, 0xe0, 0xd8, 0x6a, 0x7b, 0x04, 0x30, 0xd8, 0xcd, 0xb7, 0x80, 0x70, 0xb4, 0xc5, 0x5a}

	var pt, keyWords State
	for i := range pt {
		pt[i] = circuit.BlessWord(b, plaintext[i], false)
		keyWords[i] = circuit.BlessWord(b, key[i], false)
	}

	schedule := ExpandKey(b, keyWords[:], 4)
	cipher := Encrypt(b, pt, schedule, 10)

	for i, w := range cipher {
		if w.Value() != wantCipher[i] {
			t.Fatalf("ciphertext byte %d = %02x, want %02x", i, w.Value(), wantCipher[i])
		}
	}

	recovered := Decrypt(b, cipher, schedule, 10)
	for i, w := range recovered {
		if w.Value() != plaintext[i] {
			t.Fatalf("decrypted byte %d = %02x, want %02x", i, w.Value(), plaintext[i])
		}
	}

	if err := b.Sys.Audit(); err != nil {
		t.Fatalf("constraint audit failed: %v", err)
	}
}

// TestAES128RoundTripPublic is TestAES128RoundTrip with every input byte
// blessed as a variable, so SubBytes' table lookups and MixColumns'
// GF(2^8) arithmetic actually emit constraints rather than I5-folding away
// as compile-time constants.
func TestAES128RoundTripPublic(t *testing.T) {
	b := circuit.New(frbn254.Zero, r1cs.Config{})

	plaintext := [16]uint8{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	key := [16]uint8{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	wantCipher := [16]uint8{0x69, 0xc4, 0xe0, 0xd8, 0x6a, 0x7b, 0x04, 0x30, 0xd8, 0xcd, 0xb7, 0x80, 0x70, 0xb4, 0xc5, 0x5a}

	var pt, keyWords State
	for i := range pt {
		pt[i] = circuit.BlessWord(b, plaintext[i], true)
		keyWords[i] = circuit.BlessWord(b, key[i], true)
	}
	b.Sys.CheckpointInput()

	schedule := ExpandKey(b, keyWords[:], 4)
	cipher := Encrypt(b, pt, schedule, 10)

	for i, w := range cipher {
		if w.Value() != wantCipher[i] {
			t.Fatalf("ciphertext byte %d = %02x, want %02x", i, w.Value(), wantCipher[i])
		}
	}

	recovered := Decrypt(b, cipher, schedule, 10)
	for i, w := range recovered {
		if w.Value() != plaintext[i] {
			t.Fatalf("decrypted byte %d = %02x, want %02x", i, w.Value(), plaintext[i])
		}
	}
	if b.Sys.NbConstraints() == 0 {
		t.Fatal("expected a non-trivial constraint system for public inputs")
	}
	if err := b.Sys.Audit(); err != nil {
		t.Fatalf("constraint audit failed: %v", err)
	}
}

// TestAES192RoundTrip exercises the Nk=6 key-schedule path (ExpandKey's
// ordinary RotWord/SubWord/Rcon branch, ten-to-twelve-round nr=12), the
// FIPS-197 Appendix C.2 vector.
func TestAES192RoundTrip(t *testing.T) {
	b := circuit.New(frbn254.Zero, r1cs.Config{})

	plaintext := [16]uint8{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	key := [24]uint8{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b,
		0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17,
	}
	wantCipher := [16]uint8{0xdd, 0xa9, 0x7c, 0xa4, 0x86, 0x4c, 0xdf, 0xe0, 0x6e, 0xaf, 0x70, 0xa0, 0xec, 0x0d, 0x71, 0x91}

	var pt State
	for i := range pt {
		pt[i] = circuit.BlessWord(b, plaintext[i], false)
	}
	keyWords := make([]circuit.Word[uint8], len(key))
	for i, k := range key {
		keyWords[i] = circuit.BlessWord(b, k, false)
	}

	schedule := ExpandKey(b, keyWords, 6)
	cipher := Encrypt(b, pt, schedule, 12)

	for i, w := range cipher {
		if w.Value() != wantCipher[i] {
			t.Fatalf("ciphertext byte %d = %02x, want %02x", i, w.Value(), wantCipher[i])
		}
	}

	recovered := Decrypt(b, cipher, schedule, 12)
	for i, w := range recovered {
		if w.Value() != plaintext[i] {
			t.Fatalf("decrypted byte %d = %02x, want %02x", i, w.Value(), plaintext[i])
		}
	}
	if err := b.Sys.Audit(); err != nil {
		t.Fatalf("constraint audit failed: %v", err)
	}
}

// TestAES256RoundTrip exercises the Nk=8 key-schedule path (the extra
// nk>6 && i%nk==4 SubWord-only branch in ExpandKey), fourteen rounds, the
// FIPS-197 Appendix C.3 vector.
func TestAES256RoundTrip(t *testing.T) {
	b := circuit.New(frbn254.Zero, r1cs.Config{})

	plaintext := [16]uint8{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	key := [32]uint8{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f,
	}
	wantCipher := [16]uint8{0x8e, 0xa2, 0xb7, 0xca, 0x51, 0x67, 0x45, 0xbf, 0xea, 0xfc, 0x49, 0x90, 0x4b, 0x49, 0x60, 0x89}

	var pt State
	for i := range pt {
		pt[i] = circuit.BlessWord(b, plaintext[i], false)
	}
	keyWords := make([]circuit.Word[uint8], len(key))
	for i, k := range key {
		keyWords[i] = circuit.BlessWord(b, k, false)
	}

	schedule := ExpandKey(b, keyWords, 8)
	cipher := Encrypt(b, pt, schedule, 14)

	for i, w := range cipher {
		if w.Value() != wantCipher[i] {
			t.Fatalf("ciphertext byte %d = %02x, want %02x", i, w.Value(), wantCipher[i])
		}
	}

	recovered := Decrypt(b, cipher, schedule, 14)
	for i, w := range recovered {
		if w.Value() != plaintext[i] {
			t.Fatalf("decrypted byte %d = %02x, want %02x", i, w.Value(), plaintext[i])
		}
	}
	if err := b.Sys.Audit(); err != nil {
		t.Fatalf("constraint audit failed: %v", err)
	}
}
