// Package field provides the abstract prime-field element type the rest of
// the circuit-building core is parameterised over, plus the small set of
// bit-level helpers every per-type algebra needs (power-of-two lookup,
// bit splitting, overflow-aware addition).
package field

import "math/big"

// Fr is the abstract prime-field scalar collaborator described in spec §6:
// the core never chooses or evaluates a pairing curve, it only requires
// zero, one, field +/-/*, and inverse from whatever curve library the
// caller wires in. See field/frbn254 for a concrete instance over
// gnark-crypto's bn254 scalar field.
type Fr interface {
	Zero() Fr
	One() Fr
	Add(Fr) Fr
	Sub(Fr) Fr
	Mul(Fr) Fr
	Inverse() (Fr, bool)

	// SetUint64 returns the Fr encoding of v.
	SetUint64(v uint64) Fr
	// SetBigInt returns the Fr encoding of v reduced modulo the field order.
	SetBigInt(v *big.Int) Fr
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Equal reports whether the receiver and other encode the same element.
	Equal(other Fr) bool
	// BigInt returns the canonical representative of the receiver.
	BigInt() *big.Int
}
