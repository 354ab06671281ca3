package ecdsathreshold_test

import (
	"testing"

	"github.com/nimbus-labs/threshold/internal/ferr"
	"github.com/nimbus-labs/threshold/pkg/ecdsathreshold"
	"github.com/nimbus-labs/threshold/pkg/sharing"
	"github.com/stretchr/testify/require"
)

const demoMsg = "Hello, Threshold Signature!"

func setupCommittee(t *testing.T, threshold, n int) (*ecdsathreshold.ECDSAContext, []sharing.Share) {
	t.Helper()
	ctx, shares, err := ecdsathreshold.Setup(threshold, n, nil)
	require.NoError(t, err)
	require.Len(t, shares, n)
	return ctx, shares
}

func signWith(t *testing.T, ctx *ecdsathreshold.ECDSAContext, shares []sharing.Share, ids []int, msg []byte) []*ecdsathreshold.PartialSignature {
	t.Helper()
	byID := make(map[int]sharing.Share, len(shares))
	for _, s := range shares {
		byID[int(s.X.Int64())] = s
	}
	round := ctx.BeginRound(nil)
	defer round.End()

	partials := make([]*ecdsathreshold.PartialSignature, 0, len(ids))
	for _, id := range ids {
		ps, err := round.PartialSign(byID[id], msg)
		require.NoError(t, err)
		partials = append(partials, ps)
	}
	return partials
}

func TestThreeOfFiveCommittee(t *testing.T) {
	ctx, shares := setupCommittee(t, 3, 5)
	msg := []byte(demoMsg)

	partials := signWith(t, ctx, shares, []int{1, 3, 5}, msg)
	r, s, err := ecdsathreshold.Combine(ctx, partials)
	require.NoError(t, err)
	require.NoError(t, ctx.Verify(msg, r, s))
}

func TestUndershootFailsWithInsufficientSigners(t *testing.T) {
	ctx, shares := setupCommittee(t, 3, 5)
	msg := []byte(demoMsg)

	partials := signWith(t, ctx, shares, []int{1, 2}, msg)
	_, _, err := ecdsathreshold.Combine(ctx, partials)
	require.True(t, ferr.Is(err, ferr.InsufficientSigners))
}

func TestMismatchedNonceRejected(t *testing.T) {
	ctx, shares := setupCommittee(t, 3, 5)
	msg := []byte(demoMsg)

	byID := make(map[int]sharing.Share, len(shares))
	for _, s := range shares {
		byID[int(s.X.Int64())] = s
	}

	roundA := ctx.BeginRound(nil)
	psA1, err := roundA.PartialSign(byID[1], msg)
	require.NoError(t, err)
	psA2, err := roundA.PartialSign(byID[3], msg)
	require.NoError(t, err)
	roundA.End()

	roundB := ctx.BeginRound(nil)
	psB, err := roundB.PartialSign(byID[5], msg)
	require.NoError(t, err)
	roundB.End()

	_, _, err = ecdsathreshold.Combine(ctx, []*ecdsathreshold.PartialSignature{psA1, psA2, psB})
	require.True(t, ferr.Is(err, ferr.InconsistentNonce))
}

func TestRoundRejectsPartialSignAfterEnd(t *testing.T) {
	ctx, shares := setupCommittee(t, 2, 3)
	round := ctx.BeginRound(nil)
	round.End()

	_, err := round.PartialSign(shares[0], []byte(demoMsg))
	require.True(t, ferr.Is(err, ferr.InvalidNonce))
}

func TestTamperedMessageFailsVerification(t *testing.T) {
	ctx, shares := setupCommittee(t, 3, 5)
	msg := []byte(demoMsg)

	partials := signWith(t, ctx, shares, []int{1, 3, 5}, msg)
	r, s, err := ecdsathreshold.Combine(ctx, partials)
	require.NoError(t, err)

	err = ctx.Verify([]byte("a forged message"), r, s)
	require.True(t, ferr.Is(err, ferr.InvalidInput))
}
