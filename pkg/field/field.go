// Package field implements prime-order scalar-field arithmetic shared by the
// BLS and ECDSA threshold schemes: addition, multiplication, exponentiation
// by square-and-multiply, and modular inverse via Fermat's little theorem.
// A Field only fixes the modulus; the curve libraries (kyber, secp256k1) own
// the corresponding group (point) arithmetic and are never imported here.
package field

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/nimbus-labs/threshold/internal/ferr"
)

// Field is the scalar field Z/pZ for a prime p, the subgroup order of the
// curve in use.
type Field struct {
	p *big.Int
}

// New returns the field of integers modulo p.
func New(p *big.Int) Field {
	return Field{p: new(big.Int).Set(p)}
}

// Modulus returns a copy of the field's prime modulus.
func (f Field) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

func (f Field) reduce(v *big.Int) *big.Int {
	r := new(big.Int).Mod(v, f.p)
	if r.Sign() < 0 {
		r.Add(r, f.p)
	}
	return r
}

// Zero returns the additive identity.
func (f Field) Zero() *big.Int { return big.NewInt(0) }

// One returns the multiplicative identity.
func (f Field) One() *big.Int { return big.NewInt(1) }

// FromUint64 lifts a uint64 into the field.
func (f Field) FromUint64(v uint64) *big.Int {
	return f.reduce(new(big.Int).SetUint64(v))
}

// Add returns a+b mod p.
func (f Field) Add(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Add(a, b))
}

// Sub returns a-b mod p.
func (f Field) Sub(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Sub(a, b))
}

// Mul returns a*b mod p.
func (f Field) Mul(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Mul(a, b))
}

// Neg returns -a mod p.
func (f Field) Neg(a *big.Int) *big.Int {
	return f.reduce(new(big.Int).Neg(a))
}

// Pow computes base^exp mod p by square-and-multiply. exp must be non-negative.
func (f Field) Pow(base, exp *big.Int) *big.Int {
	result := big.NewInt(1)
	b := f.reduce(base)
	e := new(big.Int).Set(exp)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result = f.Mul(result, b)
		}
		b = f.Mul(b, b)
		e.Rsh(e, 1)
	}
	return result
}

// Inverse computes the multiplicative inverse of a via Fermat's little
// theorem (a^(p-2) mod p). It fails with InvalidInput if a is zero, per the
// requirement that nonces and Lagrange denominators must be invertible.
func (f Field) Inverse(a *big.Int) (*big.Int, error) {
	reduced := f.reduce(a)
	if reduced.Sign() == 0 {
		return nil, ferr.New(ferr.InvalidInput, "modular inverse of zero is undefined")
	}
	exp := new(big.Int).Sub(f.p, big.NewInt(2))
	return f.Pow(reduced, exp), nil
}

// Random samples a scalar uniformly from [0, p) by reducing a wide sample: it
// draws 8 bytes more than p's byte length so the reduction bias is bounded
// below 2^-64.
func (f Field) Random(rnd io.Reader) (*big.Int, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	byteLen := (f.p.BitLen()+7)/8 + 8
	buf := make([]byte, byteLen)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return nil, err
	}
	return f.reduce(new(big.Int).SetBytes(buf)), nil
}

// Equal reports whether a and b represent the same field element.
func (f Field) Equal(a, b *big.Int) bool {
	return f.reduce(a).Cmp(f.reduce(b)) == 0
}

// IsZero reports whether a reduces to zero in this field.
func (f Field) IsZero(a *big.Int) bool {
	return f.reduce(a).Sign() == 0
}
