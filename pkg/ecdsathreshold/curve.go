// Package ecdsathreshold implements a shared-nonce threshold ECDSA scheme
// over secp256k1: a simplified threshold construction, not a full
// multiparty-computation protocol. One round coordinator samples the
// per-round nonce k and shares the resulting r with every signer; each
// signer only ever computes a partial signature affine in its own secret
// share, so Lagrange interpolation over the partials recovers the same
// signature a single holder of the full secret key would have produced.
package ecdsathreshold

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/nimbus-labs/threshold/pkg/field"
)

// curveOrder is secp256k1's base point order N.
var curveOrder, _ = new(big.Int).SetString(
	"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

// ScalarField is Z/NZ, the field secret keys, nonces, and shares live in.
var ScalarField = field.New(curveOrder)

const scalarByteLen = 32

func bigIntToModNScalar(v *big.Int) *secp256k1.ModNScalar {
	buf := make([]byte, scalarByteLen)
	reduced := new(big.Int).Mod(v, curveOrder)
	reduced.FillBytes(buf)
	var s secp256k1.ModNScalar
	s.SetByteSlice(buf)
	return &s
}

func modNScalarToBigInt(s *secp256k1.ModNScalar) *big.Int {
	b := s.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// basePointMul computes k*G in affine coordinates.
func basePointMul(k *secp256k1.ModNScalar) (x, y *big.Int) {
	var result secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &result)
	result.ToAffine()
	return fieldValToBigInt(&result.X), fieldValToBigInt(&result.Y)
}

// pointMul computes k*P in affine coordinates, for P given in affine form.
func pointMul(k *secp256k1.ModNScalar, px, py *big.Int) (x, y *big.Int) {
	p := affineToJacobian(px, py)
	var result secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(k, &p, &result)
	result.ToAffine()
	return fieldValToBigInt(&result.X), fieldValToBigInt(&result.Y)
}

// pointAdd computes P+Q in affine coordinates.
func pointAdd(px, py, qx, qy *big.Int) (x, y *big.Int) {
	p := affineToJacobian(px, py)
	q := affineToJacobian(qx, qy)
	var result secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p, &q, &result)
	result.ToAffine()
	return fieldValToBigInt(&result.X), fieldValToBigInt(&result.Y)
}

func affineToJacobian(x, y *big.Int) secp256k1.JacobianPoint {
	var p secp256k1.JacobianPoint
	p.X.SetByteSlice(leftPad32(x))
	p.Y.SetByteSlice(leftPad32(y))
	p.Z.SetInt(1)
	return p
}

func fieldValToBigInt(f *secp256k1.FieldVal) *big.Int {
	b := f.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func leftPad32(v *big.Int) []byte {
	buf := make([]byte, scalarByteLen)
	v.FillBytes(buf)
	return buf
}

// hashToScalar reduces a message digest modulo the curve order, per the
// standard ECDSA convention of truncating the hash to the bit length of N.
func hashToScalar(digest []byte) *big.Int {
	e := new(big.Int).SetBytes(digest)
	return e.Mod(e, curveOrder)
}
