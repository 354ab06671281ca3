// Package blsthreshold implements (t, n)-threshold BLS signatures over
// BLS12-381: secret keys live on the G1/G2 scalar field shared with
// pkg/sharing, signatures are points in G1, and public keys are points in
// G2. Combination recovers the full signature by the same Lagrange weights
// pkg/sharing uses to recover a scalar secret, relying on Lagrange
// interpolation commuting with scalar multiplication in G1.
package blsthreshold

import (
	"io"
	"math/big"

	"github.com/drand/kyber"
	bls12381 "github.com/drand/kyber-bls12381"
	"github.com/drand/kyber/pairing"

	"github.com/nimbus-labs/threshold/internal/ferr"
	"github.com/nimbus-labs/threshold/pkg/field"
	"github.com/nimbus-labs/threshold/pkg/sharing"
)

// ScalarField is the scalar field of the BLS12-381 pairing-friendly curve,
// shared by all BLSContext instances.
var ScalarField = field.New(scalarOrder)

// PartialSignature is one signer's contribution, a point in G1.
type PartialSignature struct {
	SignerID int
	Sig      kyber.Point
}

// BLSContext holds the public material for one (t, n) committee: the
// pairing suite, the group public key, and each signer's public share
// commitment in G2. It never holds a secret.
type BLSContext struct {
	suite     pairing.Suite
	t, n      int
	groupPK   kyber.Point
	pubShares map[int]kyber.Point
}

// Setup samples a fresh BLS12-381 secret, splits it into n Shamir shares of
// threshold t, and returns the resulting committee context alongside the
// shares to be distributed privately to each signer.
func Setup(t, n int, rnd io.Reader) (*BLSContext, []sharing.Share, error) {
	if t < 1 || n < t {
		return nil, nil, ferr.New(ferr.InvalidConfig, "require 1 <= t <= n")
	}
	suite := bls12381.NewBLS12381Suite()
	secret, err := ScalarField.Random(rnd)
	if err != nil {
		return nil, nil, err
	}
	shares, err := sharing.CreateShares(ScalarField, secret, t, n, rnd)
	if err != nil {
		return nil, nil, err
	}
	ctx := &BLSContext{
		suite:     suite,
		t:         t,
		n:         n,
		groupPK:   suite.G2().Point().Mul(bigIntToScalar(suite.G2(), secret), nil),
		pubShares: make(map[int]kyber.Point, n),
	}
	for _, s := range shares {
		id := int(s.X.Int64())
		ctx.pubShares[id] = suite.G2().Point().Mul(bigIntToScalar(suite.G2(), s.Y), nil)
	}
	return ctx, shares, nil
}

// GroupPublicKey returns the committee's shared public key, a point in G2.
func (c *BLSContext) GroupPublicKey() kyber.Point { return c.groupPK }

// PublicShare returns signer id's public share commitment, or UnknownParty
// if id is outside the committee.
func (c *BLSContext) PublicShare(id int) (kyber.Point, error) {
	pk, ok := c.pubShares[id]
	if !ok {
		return nil, ferr.Newf(ferr.UnknownParty, "no public share for signer %d", id)
	}
	return pk, nil
}

// VerifyShareConsistency recomputes share.Y * G2.Base() and checks it
// matches the public commitment recorded for share.X at Setup time. Run
// this once per share right after dealing, before any signing occurs.
func (c *BLSContext) VerifyShareConsistency(share sharing.Share) error {
	id := int(share.X.Int64())
	pk, err := c.PublicShare(id)
	if err != nil {
		return err
	}
	recomputed := c.suite.G2().Point().Mul(bigIntToScalar(c.suite.G2(), share.Y), nil)
	if !recomputed.Equal(pk) {
		return ferr.Newf(ferr.InvalidInput, "share for signer %d disagrees with its public commitment", id)
	}
	return nil
}

// PartialSign computes Si = yi * H(msg), a point in G1, using signer share's
// private evaluation yi.
func (c *BLSContext) PartialSign(share sharing.Share, msg []byte) (*PartialSignature, error) {
	id := int(share.X.Int64())
	if _, err := c.PublicShare(id); err != nil {
		return nil, err
	}
	h := HashToG1(c.suite, msg)
	sig := c.suite.G1().Point().Mul(bigIntToScalar(c.suite.G1(), share.Y), h)
	return &PartialSignature{SignerID: id, Sig: sig}, nil
}

// VerifyPartial checks a partial signature against the signer's public
// share commitment via e(H(msg), PKi) == e(Si, G2.Base()).
func (c *BLSContext) VerifyPartial(ps *PartialSignature, msg []byte) error {
	pk, err := c.PublicShare(ps.SignerID)
	if err != nil {
		return err
	}
	h := HashToG1(c.suite, msg)
	if !pairingsEqual(c.suite, h, pk, ps.Sig, c.suite.G2().Point().Base()) {
		return ferr.Newf(ferr.InvalidInput, "partial signature from signer %d failed pairing check", ps.SignerID)
	}
	return nil
}

// Combine recovers the full BLS signature from at least t partial
// signatures, via the same Lagrange weights pkg/sharing would use to
// recover the underlying scalar secret, applied as scalar multiplications
// on each signer's G1 point instead. Only the first t partials are used;
// each of them is verified against its signer's public share first, and the
// first verification failure aborts combination. Partials past the first t
// are neither verified nor used.
func (c *BLSContext) Combine(partials []*PartialSignature, msg []byte) (kyber.Point, error) {
	if len(partials) < c.t {
		return nil, ferr.Newf(ferr.InsufficientSigners, "need %d partial signatures, got %d", c.t, len(partials))
	}
	selected := partials[:c.t]
	xs := make([]*big.Int, len(selected))
	for i, ps := range selected {
		if err := c.VerifyPartial(ps, msg); err != nil {
			return nil, err
		}
		xs[i] = big.NewInt(int64(ps.SignerID))
	}
	combined := c.suite.G1().Point().Null()
	for i, ps := range selected {
		coeff, err := sharing.LagrangeCoefficient(ScalarField, xs, i)
		if err != nil {
			return nil, err
		}
		term := c.suite.G1().Point().Mul(bigIntToScalar(c.suite.G1(), coeff), ps.Sig)
		combined = combined.Add(combined, term)
	}
	return combined, nil
}

// Verify checks a recovered signature against the committee's group public
// key via e(H(msg), PK) == e(sig, G2.Base()).
func (c *BLSContext) Verify(msg []byte, sig kyber.Point) error {
	h := HashToG1(c.suite, msg)
	if !pairingsEqual(c.suite, h, c.groupPK, sig, c.suite.G2().Point().Base()) {
		return ferr.New(ferr.InvalidInput, "signature failed verification against group public key")
	}
	return nil
}
