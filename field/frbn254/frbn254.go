// Package frbn254 adapts gnark-crypto's bn254 scalar field to the abstract
// field.Fr interface, giving the circuit-building core a concrete backend
// to run against in tests and the end-to-end scenarios (spec §8) without
// the core itself ever depending on a curve choice.
package frbn254

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/jancarlsson/snarkfront/field"
)

// Element wraps fr.Element so it satisfies field.Fr.
type Element struct {
	v fr.Element
}

// Zero returns the bn254 scalar field's additive identity.
var Zero = Element{}

var _ field.Fr = Element{}

func (e Element) Zero() field.Fr { return Element{} }

func (e Element) One() field.Fr {
	var one fr.Element
	one.SetOne()
	return Element{v: one}
}

func (e Element) Add(other field.Fr) field.Fr {
	o := other.(Element)
	var res fr.Element
	res.Add(&e.v, &o.v)
	return Element{v: res}
}

func (e Element) Sub(other field.Fr) field.Fr {
	o := other.(Element)
	var res fr.Element
	res.Sub(&e.v, &o.v)
	return Element{v: res}
}

func (e Element) Mul(other field.Fr) field.Fr {
	o := other.(Element)
	var res fr.Element
	res.Mul(&e.v, &o.v)
	return Element{v: res}
}

func (e Element) Inverse() (field.Fr, bool) {
	if e.v.IsZero() {
		return Element{}, false
	}
	var res fr.Element
	res.Inverse(&e.v)
	return Element{v: res}, true
}

func (e Element) SetUint64(v uint64) field.Fr {
	var res fr.Element
	res.SetUint64(v)
	return Element{v: res}
}

func (e Element) SetBigInt(v *big.Int) field.Fr {
	var res fr.Element
	res.SetBigInt(v)
	return Element{v: res}
}

func (e Element) IsZero() bool { return e.v.IsZero() }

func (e Element) Equal(other field.Fr) bool {
	o, ok := other.(Element)
	if !ok {
		return false
	}
	return e.v.Equal(&o.v)
}

func (e Element) BigInt() *big.Int {
	out := new(big.Int)
	e.v.BigInt(out)
	return out
}
