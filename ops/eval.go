package ops

import "math/bits"

// EvalLogical realises a LogicalOps on 0/1 operands. Together with
// EvalScalar, EvalBitwise, EvalEquality and EvalScalarCmp below, this is
// the witness-side twin of the constraint-emitting gadgets in package
// r1cs: every constraint that layer emits must be satisfied by the value
// these functions compute.
func EvalLogical(kind LogicalOps, x, y int) int {
	switch kind {
	case LAND:
		return x & y
	case LOR:
		return x | y
	case LXOR:
		return x ^ y
	case LSAME:
		return 1 - (x ^ y)
	case LCMPLMNT:
		return 1 - x
	default:
		panic("ops: unknown LogicalOps")
	}
}

// EvalScalar realises a ScalarOps on int64 operands; callers working over
// an actual field element or a big.Int (such as the big-integer
// specialisation in package alg) do the arithmetic there instead.
func EvalScalar(kind ScalarOps, x, y int64) int64 {
	switch kind {
	case SADD:
		return x + y
	case SSUB:
		return x - y
	case SMUL:
		return x * y
	default:
		panic("ops: unknown ScalarOps")
	}
}

// EvalBitwise realises a BitwiseOps on a fixed width w (8/32/64), masking
// the result to w bits. n is the shift/rotate count for the permutation
// operators and is ignored otherwise.
func EvalBitwise(kind BitwiseOps, w uint, n uint, x, y uint64) uint64 {
	mask := widthMask(w)
	x &= mask
	y &= mask
	switch kind {
	case BAND:
		return x & y
	case BOR:
		return x | y
	case BXOR:
		return x ^ y
	case BSAME:
		return (^(x ^ y)) & mask
	case BCMPLMNT:
		return (^x) & mask
	case BADDMOD:
		return (x + y) & mask
	case BSHL:
		if n >= w {
			return 0
		}
		return (x << n) & mask
	case BSHR:
		if n >= w {
			return 0
		}
		return x >> n
	case BROTL:
		if n%w == 0 {
			return x
		}
		return bitsRotateLeft(x, w, n%w)
	case BROTR:
		if n%w == 0 {
			return x
		}
		return bitsRotateLeft(x, w, w-(n%w))
	default:
		panic("ops: unknown BitwiseOps")
	}
}

func widthMask(w uint) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

func bitsRotateLeft(x uint64, w, n uint) uint64 {
	mask := widthMask(w)
	x &= mask
	return ((x << n) | (x >> (w - n))) & mask
}

// EvalEquality realises EqualityCmp on like-typed operands already reduced
// to a canonical comparable form (e.g. two big.Int, two uint64).
func EvalEquality[T comparable](kind EqualityCmp, x, y T) bool {
	switch kind {
	case EQ:
		return x == y
	case NEQ:
		return x != y
	default:
		panic("ops: unknown EqualityCmp")
	}
}

// EvalScalarCmp realises ScalarCmp on the result of a three-way comparison
// of ordered native operands.
func EvalScalarCmp(kind ScalarCmp, cmp int) bool {
	// cmp follows big.Int.Cmp/bytes.Compare convention: <0, 0, >0.
	switch kind {
	case CEQ:
		return cmp == 0
	case CNEQ:
		return cmp != 0
	case CLT:
		return cmp < 0
	case CLE:
		return cmp <= 0
	case CGT:
		return cmp > 0
	case CGE:
		return cmp >= 0
	default:
		panic("ops: unknown ScalarCmp")
	}
}

// PopCount returns the number of set bits in n.
func PopCount(n int) int { return bits.OnesCount(uint(n)) }
