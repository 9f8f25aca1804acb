package aes

import "github.com/jancarlsson/snarkfront/circuit"

// State is the 4x4 AES state array, column-major as in FIPS-197 §3.4: bytes
// 0..3 are column 0, 4..7 column 1, and so on.
type State = [16]circuit.Word[uint8]

// KeySchedule holds every round key as a flat byte slice; Nr+1 round keys of
// 16 bytes each.
type KeySchedule = []circuit.Word[uint8]

var rcon = [11]uint8{0x00, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// xtime multiplies a circuit-level GF(2^8) element by x (FIPS-197 §4.2.1):
// shift left one bit, then conditionally XOR the reduction polynomial
// 0x1b when the vacated high bit was set.
func xtime(b *circuit.Builder, x circuit.Word[uint8]) circuit.Word[uint8] {
	hi := circuit.IsNotEqual(b, circuit.And(b, x, circuit.ConstWord(b, uint8(0x80))), circuit.ConstWord(b, uint8(0)))
	shifted := circuit.Shl(b, x, 1)
	reduced := circuit.Xor(b, shifted, circuit.ConstWord(b, uint8(0x1b)))
	return circuit.SelectWord(b, hi, reduced, shifted)
}

// gmul multiplies two GF(2^8) elements by the standard shift-and-add
// construction: gmul(a,b) = sum over set bits i of b of xtime^i(a).
func gmul(b *circuit.Builder, x, y circuit.Word[uint8]) circuit.Word[uint8] {
	acc := circuit.ConstWord(b, uint8(0))
	cur := x
	for i := 0; i < 8; i++ {
		bit := circuit.IsNotEqual(b, circuit.And(b, y, circuit.ConstWord(b, uint8(1<<uint(i)))), circuit.ConstWord(b, uint8(0)))
		acc = circuit.SelectWord(b, bit, circuit.Xor(b, acc, cur), acc)
		if i != 7 {
			cur = xtime(b, cur)
		}
	}
	return acc
}

// SubBytes applies the S-box to every state byte.
func SubBytes(b *circuit.Builder, s State) State {
	var out State
	for i, x := range s {
		out[i] = SubByte(b, x)
	}
	return out
}

// InvSubBytes applies the inverse S-box to every state byte.
func InvSubBytes(b *circuit.Builder, s State) State {
	var out State
	for i, x := range s {
		out[i] = InvSubByte(b, x)
	}
	return out
}

// ShiftRows cyclically shifts rows 1, 2 and 3 left by 1, 2 and 3 bytes
// respectively (FIPS-197 §5.1.2), expressed as a column-major index
// permutation with no new constraints.
func ShiftRows(s State) State {
	return State{
		s[0], s[5], s[10], s[15],
		s[4], s[9], s[14], s[3],
		s[8], s[13], s[2], s[7],
		s[12], s[1], s[6], s[11],
	}
}

// InvShiftRows undoes ShiftRows.
func InvShiftRows(s State) State {
	return State{
		s[0], s[13], s[10], s[7],
		s[4], s[1], s[14], s[11],
		s[8], s[5], s[2], s[15],
		s[12], s[9], s[6], s[3],
	}
}

// MixColumns applies the FIPS-197 §5.1.3 GF(2^8) matrix multiply to each
// column of the state.
func MixColumns(b *circuit.Builder, s State) State {
	var out State
	two, three := circuit.ConstWord(b, uint8(2)), circuit.ConstWord(b, uint8(3))
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[c*4], s[c*4+1], s[c*4+2], s[c*4+3]
		out[c*4+0] = xor4(b, gmul(b, a0, two), gmul(b, a1, three), a2, a3)
		out[c*4+1] = xor4(b, a0, gmul(b, a1, two), gmul(b, a2, three), a3)
		out[c*4+2] = xor4(b, a0, a1, gmul(b, a2, two), gmul(b, a3, three))
		out[c*4+3] = xor4(b, gmul(b, a0, three), a1, a2, gmul(b, a3, two))
	}
	return out
}

// InvMixColumns applies the FIPS-197 §5.3.3 inverse matrix.
func InvMixColumns(b *circuit.Builder, s State) State {
	var out State
	c9, cB, cD, cE := circuit.ConstWord(b, uint8(0x09)), circuit.ConstWord(b, uint8(0x0b)), circuit.ConstWord(b, uint8(0x0d)), circuit.ConstWord(b, uint8(0x0e))
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[c*4], s[c*4+1], s[c*4+2], s[c*4+3]
		out[c*4+0] = xor4(b, gmul(b, a0, cE), gmul(b, a1, cB), gmul(b, a2, cD), gmul(b, a3, c9))
		out[c*4+1] = xor4(b, gmul(b, a0, c9), gmul(b, a1, cE), gmul(b, a2, cB), gmul(b, a3, cD))
		out[c*4+2] = xor4(b, gmul(b, a0, cD), gmul(b, a1, c9), gmul(b, a2, cE), gmul(b, a3, cB))
		out[c*4+3] = xor4(b, gmul(b, a0, cB), gmul(b, a1, cD), gmul(b, a2, c9), gmul(b, a3, cE))
	}
	return out
}

func xor4(b *circuit.Builder, a, c, d, e circuit.Word[uint8]) circuit.Word[uint8] {
	return circuit.Xor(b, circuit.Xor(b, a, c), circuit.Xor(b, d, e))
}

// AddRoundKey XORs the round key into the state.
func AddRoundKey(b *circuit.Builder, s State, key []circuit.Word[uint8]) State {
	var out State
	for i := range s {
		out[i] = circuit.Xor(b, s[i], key[i])
	}
	return out
}

// ExpandKey runs the FIPS-197 §5.2 key schedule over a circuit-level key of
// nk words (4/6/8 for AES-128/192/256), returning (nr+1)*16 round-key
// bytes.
func ExpandKey(b *circuit.Builder, key []circuit.Word[uint8], nk int) KeySchedule {
	nr := nk + 6
	totalWords := 4 * (nr + 1)
	words := make([][4]circuit.Word[uint8], totalWords)
	for i := 0; i < nk; i++ {
		words[i] = [4]circuit.Word[uint8]{key[4*i], key[4*i+1], key[4*i+2], key[4*i+3]}
	}
	for i := nk; i < totalWords; i++ {
		temp := words[i-1]
		if i%nk == 0 {
			rotated := [4]circuit.Word[uint8]{temp[1], temp[2], temp[3], temp[0]}
			subbed := [4]circuit.Word[uint8]{SubByte(b, rotated[0]), SubByte(b, rotated[1]), SubByte(b, rotated[2]), SubByte(b, rotated[3])}
			subbed[0] = circuit.Xor(b, subbed[0], circuit.ConstWord(b, rcon[i/nk]))
			temp = subbed
		} else if nk > 6 && i%nk == 4 {
			temp = [4]circuit.Word[uint8]{SubByte(b, temp[0]), SubByte(b, temp[1]), SubByte(b, temp[2]), SubByte(b, temp[3])}
		}
		prev := words[i-nk]
		words[i] = [4]circuit.Word[uint8]{
			circuit.Xor(b, prev[0], temp[0]), circuit.Xor(b, prev[1], temp[1]),
			circuit.Xor(b, prev[2], temp[2]), circuit.Xor(b, prev[3], temp[3]),
		}
	}

	out := make(KeySchedule, totalWords*4)
	for i, w := range words {
		copy(out[i*4:i*4+4], w[:])
	}
	return out
}

// Encrypt runs FIPS-197 §5.1 over a single 16-byte block with the given
// expanded key schedule (nr = 10/12/14 for AES-128/192/256).
func Encrypt(b *circuit.Builder, plaintext State, schedule KeySchedule, nr int) State {
	s := AddRoundKey(b, plaintext, schedule[0:16])
	for round := 1; round < nr; round++ {
		s = SubBytes(b, s)
		s = ShiftRows(s)
		s = MixColumns(b, s)
		s = AddRoundKey(b, s, schedule[round*16:round*16+16])
	}
	s = SubBytes(b, s)
	s = ShiftRows(s)
	s = AddRoundKey(b, s, schedule[nr*16:nr*16+16])
	return s
}

// Decrypt runs the FIPS-197 §5.3 inverse cipher.
func Decrypt(b *circuit.Builder, ciphertext State, schedule KeySchedule, nr int) State {
	s := AddRoundKey(b, ciphertext, schedule[nr*16:nr*16+16])
	for round := nr - 1; round >= 1; round-- {
		s = InvShiftRows(s)
		s = InvSubBytes(b, s)
		s = AddRoundKey(b, s, schedule[round*16:round*16+16])
		s = InvMixColumns(b, s)
	}
	s = InvShiftRows(s)
	s = InvSubBytes(b, s)
	s = AddRoundKey(b, s, schedule[0:16])
	return s
}
