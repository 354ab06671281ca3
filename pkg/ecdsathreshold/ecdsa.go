package ecdsathreshold

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/nimbus-labs/threshold/internal/ferr"
	"github.com/nimbus-labs/threshold/pkg/sharing"
)

// ECDSAContext holds the public material for one (t, n) committee: the
// group public key and each signer's public share commitment, both points
// on secp256k1 in affine coordinates. It never holds a secret or a nonce.
type ECDSAContext struct {
	t, n           int
	pkX, pkY       *big.Int
	shareX, shareY map[int]*big.Int
}

// Setup samples a fresh secp256k1 secret key, splits it into n Shamir
// shares of threshold t, and returns the committee context alongside the
// shares to be distributed privately to each signer.
func Setup(t, n int, rnd io.Reader) (*ECDSAContext, []sharing.Share, error) {
	if t < 1 || n < t {
		return nil, nil, ferr.New(ferr.InvalidConfig, "require 1 <= t <= n")
	}
	secret, err := ScalarField.Random(rnd)
	if err != nil {
		return nil, nil, err
	}
	shares, err := sharing.CreateShares(ScalarField, secret, t, n, rnd)
	if err != nil {
		return nil, nil, err
	}
	pkX, pkY := basePointMul(bigIntToModNScalar(secret))
	ctx := &ECDSAContext{
		t: t, n: n,
		pkX: pkX, pkY: pkY,
		shareX: make(map[int]*big.Int, n),
		shareY: make(map[int]*big.Int, n),
	}
	for _, s := range shares {
		id := int(s.X.Int64())
		x, y := basePointMul(bigIntToModNScalar(s.Y))
		ctx.shareX[id], ctx.shareY[id] = x, y
	}
	return ctx, shares, nil
}

// GroupPublicKey returns the committee's shared public key in affine
// coordinates.
func (c *ECDSAContext) GroupPublicKey() (x, y *big.Int) {
	return new(big.Int).Set(c.pkX), new(big.Int).Set(c.pkY)
}

// PublicShare returns signer id's public share commitment, or UnknownParty
// if id is outside the committee.
func (c *ECDSAContext) PublicShare(id int) (x, y *big.Int, err error) {
	px, ok := c.shareX[id]
	if !ok {
		return nil, nil, ferr.Newf(ferr.UnknownParty, "no public share for signer %d", id)
	}
	return new(big.Int).Set(px), new(big.Int).Set(c.shareY[id]), nil
}

// Verify checks a recovered (r, s) signature against the committee's group
// public key over msg, following textbook ECDSA verification.
func (c *ECDSAContext) Verify(msg []byte, r, s *big.Int) error {
	if r.Sign() <= 0 || r.Cmp(curveOrder) >= 0 || s.Sign() <= 0 || s.Cmp(curveOrder) >= 0 {
		return ferr.New(ferr.InvalidInput, "signature component out of range")
	}
	digest := sha256.Sum256(msg)
	e := hashToScalar(digest[:])

	sInv, err := ScalarField.Inverse(s)
	if err != nil {
		return ferr.Wrap(ferr.InvalidInput, "signature s has no inverse", err)
	}
	u1 := ScalarField.Mul(e, sInv)
	u2 := ScalarField.Mul(r, sInv)

	ux, uy := basePointMul(bigIntToModNScalar(u1))
	vx, vy := pointMul(bigIntToModNScalar(u2), c.pkX, c.pkY)
	rx, _ := pointAdd(ux, uy, vx, vy)

	rxModN := new(big.Int).Mod(rx, curveOrder)
	if rxModN.Cmp(r) != 0 {
		return ferr.New(ferr.InvalidInput, "signature failed verification against group public key")
	}
	return nil
}
