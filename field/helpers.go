package field

import "fmt"

// maxPowerIndex caps the lazily-extended PowersOf2 table so that an
// accidental pointer-as-index bug fails loudly instead of allocating an
// unbounded slice. 1024 comfortably covers every fixed-width type this
// module supports (bool, uint8/32/64, big integers up to maxBigIntBits).
const maxPowerIndex = 1024

// maxBigIntBits bounds the big-integer specialisation's bit width (see
// alg.BigInt); design note 9 calls out that the bit width is small (<=128)
// for this core.
const maxBigIntBits = 128

// PowersOf2 is a per-task lazy cache of field-valued powers of two. Index i
// extends the table, by doubling the last entry, up to i. Requesting an
// index beyond maxPowerIndex panics: it almost certainly means a caller
// passed a pointer or a raw bit count where a power index was expected.
type PowersOf2 struct {
	zero, one Fr
	table     []Fr
}

// NewPowersOf2 creates an empty cache seeded from the given field's zero
// and one elements.
func NewPowersOf2(zero Fr) *PowersOf2 {
	one := zero.One()
	return &PowersOf2{
		zero:  zero,
		one:   one,
		table: []Fr{one},
	}
}

// At returns 2^i as an Fr, extending the table as needed.
func (p *PowersOf2) At(i int) Fr {
	if i < 0 {
		panic(fmt.Sprintf("field: negative power-of-two index %d", i))
	}
	if i > maxPowerIndex {
		panic(fmt.Sprintf("field: power-of-two index %d exceeds sanity bound %d", i, maxPowerIndex))
	}
	for len(p.table) <= i {
		last := p.table[len(p.table)-1]
		p.table = append(p.table, last.Add(last))
	}
	return p.table[i]
}

// SizeBits returns the bit width associated with a fixed application type:
// 1 for bool and 8/32/64 for the fixed-width unsigned specialisations. The
// arbitrary-precision specialisation's width comes from MaxBigIntBits.
func SizeBits[V bool | uint8 | uint32 | uint64](v V) int {
	switch any(v).(type) {
	case bool:
		return 1
	case uint8:
		return 8
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		panic("field: unsupported value type")
	}
}

// ValueBits returns the little-endian bit vector of a fixed-width value:
// bit 0 is the least significant bit.
func ValueBits[V bool | uint8 | uint32 | uint64](v V) []int {
	n := SizeBits(v)
	bits := make([]int, n)
	var u uint64
	switch t := any(v).(type) {
	case bool:
		if t {
			u = 1
		}
	case uint8:
		u = uint64(t)
	case uint32:
		u = uint64(t)
	case uint64:
		u = t
	}
	for i := 0; i < n; i++ {
		bits[i] = int((u >> uint(i)) & 1)
	}
	return bits
}

// BitsValue consumes as many low bits of bits as fit in the native width of
// V and returns the reconstructed value together with whatever bits remain
// unconsumed (the carry/overflow tail produced by e.g. ADDMOD).
func BitsValue[V bool | uint8 | uint32 | uint64](bits []int) (value V, remainder []int) {
	var zero V
	n := SizeBits(zero)
	if n > len(bits) {
		n = len(bits)
	}
	var u uint64
	for i := 0; i < n; i++ {
		if bits[i]&1 != 0 {
			u |= 1 << uint(i)
		}
	}
	switch any(zero).(type) {
	case bool:
		value = any(u != 0).(V)
	case uint8:
		value = any(uint8(u)).(V)
	case uint32:
		value = any(uint32(u)).(V)
	case uint64:
		value = any(u).(V)
	}
	return value, bits[n:]
}

// BoolTo returns F.one() when b is true, F.zero() otherwise.
func BoolTo(b bool, zero Fr) Fr {
	if b {
		return zero.One()
	}
	return zero
}

// OverflowAdd performs a multi-word addition: hi:lo + b is computed as a
// 2*W-bit little-endian bit vector (low W bits are the truncated sum, high
// bits hold hi plus the carry), where W is the bit width shared by lo and
// b. Missing high bits of hi count as zero.
func OverflowAdd(hiBits, loBits, bBits []int) []int {
	if len(loBits) != len(bBits) {
		panic("field: OverflowAdd operands must share bit width")
	}
	w := len(loBits)
	out := make([]int, 2*w)
	carry := 0
	for i := 0; i < w; i++ {
		s := loBits[i] + bBits[i] + carry
		out[i] = s & 1
		carry = s >> 1
	}
	for i := 0; i < w; i++ {
		h := 0
		if i < len(hiBits) {
			h = hiBits[i]
		}
		s := h + carry
		out[w+i] = s & 1
		carry = s >> 1
	}
	return out
}

// MatchMSB returns the number of equal high-order bits of two equal-length
// little-endian bit vectors, or -1 if the vectors have different lengths.
func MatchMSB(a, b []int) int {
	if len(a) != len(b) {
		return -1
	}
	n := len(a)
	count := 0
	for i := n - 1; i >= 0; i-- {
		if a[i] != b[i] {
			break
		}
		count++
	}
	return count
}

// MaxBigIntBits exposes the bit-width bound used by the BigInt
// specialisation in package alg.
func MaxBigIntBits() int { return maxBigIntBits }
