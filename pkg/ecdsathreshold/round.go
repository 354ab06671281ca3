package ecdsathreshold

import (
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/nimbus-labs/threshold/internal/ferr"
	"github.com/nimbus-labs/threshold/pkg/sharing"
)

// Round is a single signing round's nonce lifecycle. A module-level nonce
// shared across concurrent rounds would leak the secret key the moment two
// signatures used the same k (s1 - s2 reveals k, and from there the key);
// scoping the nonce to a Round that is sampled lazily and zeroized on End
// makes that sharing impossible by construction.
type Round struct {
	ctx   *ECDSAContext
	rnd   io.Reader
	k     *big.Int
	r     *big.Int
	ended bool
}

// BeginRound starts a new signing round against ctx. The nonce is not
// sampled yet; it is drawn lazily on the first PartialSign call, and held
// fixed for the rest of the round so every signer's partial agrees on r.
func (c *ECDSAContext) BeginRound(rnd io.Reader) *Round {
	return &Round{ctx: c, rnd: rnd}
}

func (rd *Round) ensureNonce() error {
	if rd.ended {
		return ferr.New(ferr.InvalidNonce, "round has already ended")
	}
	if rd.k != nil {
		return nil
	}
	for {
		k, err := ScalarField.Random(rd.rnd)
		if err != nil {
			return err
		}
		if ScalarField.IsZero(k) {
			continue
		}
		x, _ := basePointMul(bigIntToModNScalar(k))
		r := new(big.Int).Mod(x, curveOrder)
		if r.Sign() == 0 {
			continue
		}
		rd.k = k
		rd.r = r
		return nil
	}
}

// PartialSignature is one signer's contribution: si = k⁻¹·(e + r·yi) mod N,
// affine in the signer's secret share yi.
type PartialSignature struct {
	SignerID int
	R        *big.Int
	S        *big.Int
}

// PartialSign computes this round's partial signature for share, sampling
// the round's shared nonce on first use.
func (rd *Round) PartialSign(share sharing.Share, msg []byte) (*PartialSignature, error) {
	if err := rd.ensureNonce(); err != nil {
		return nil, err
	}
	id := int(share.X.Int64())
	if _, _, err := rd.ctx.PublicShare(id); err != nil {
		return nil, err
	}

	digest := sha256.Sum256(msg)
	e := hashToScalar(digest[:])

	kInv, err := ScalarField.Inverse(rd.k)
	if err != nil {
		return nil, err
	}
	ry := ScalarField.Mul(rd.r, share.Y)
	sum := ScalarField.Add(e, ry)
	s := ScalarField.Mul(kInv, sum)

	return &PartialSignature{SignerID: id, R: new(big.Int).Set(rd.r), S: s}, nil
}

// End zeroizes the round's nonce and marks the round closed; further
// PartialSign calls return InvalidNonce.
func (rd *Round) End() {
	if rd.k != nil {
		rd.k.SetInt64(0)
	}
	rd.k = nil
	rd.ended = true
}

// Combine recovers the full (r, s) signature from at least t partial
// signatures produced in the same round. Every partial must agree on r —
// disagreement means they were not all produced against the same nonce —
// or combination fails with InconsistentNonce.
func Combine(ctx *ECDSAContext, partials []*PartialSignature) (r, s *big.Int, err error) {
	if len(partials) < ctx.t {
		return nil, nil, ferr.Newf(ferr.InsufficientSigners, "need %d partial signatures, got %d", ctx.t, len(partials))
	}
	selected := partials[:ctx.t]
	r = partials[0].R
	for _, ps := range partials[1:] {
		if ps.R.Cmp(r) != 0 {
			return nil, nil, ferr.New(ferr.InconsistentNonce, "partial signatures used different nonces")
		}
	}

	xs := make([]*big.Int, len(selected))
	shares := make([]sharing.Share, len(selected))
	for i, ps := range selected {
		xs[i] = big.NewInt(int64(ps.SignerID))
		shares[i] = sharing.Share{X: xs[i], Y: ps.S}
	}
	combined, err := sharing.Reconstruct(ScalarField, shares, ctx.t)
	if err != nil {
		return nil, nil, err
	}
	return new(big.Int).Set(r), combined, nil
}
