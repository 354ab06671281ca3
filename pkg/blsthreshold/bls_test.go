package blsthreshold_test

import (
	"testing"

	"github.com/nimbus-labs/threshold/internal/ferr"
	"github.com/nimbus-labs/threshold/pkg/blsthreshold"
	"github.com/nimbus-labs/threshold/pkg/sharing"
	"github.com/stretchr/testify/require"
)

func setupCommittee(t *testing.T, threshold, n int) (*blsthreshold.BLSContext, []sharing.Share) {
	t.Helper()
	ctx, shares, err := blsthreshold.Setup(threshold, n, nil)
	require.NoError(t, err)
	require.Len(t, shares, n)
	for _, s := range shares {
		require.NoError(t, ctx.VerifyShareConsistency(s))
	}
	return ctx, shares
}

func signWith(t *testing.T, ctx *blsthreshold.BLSContext, shares []sharing.Share, ids []int, msg []byte) []*blsthreshold.PartialSignature {
	t.Helper()
	byID := make(map[int]sharing.Share, len(shares))
	for _, s := range shares {
		byID[int(s.X.Int64())] = s
	}
	partials := make([]*blsthreshold.PartialSignature, 0, len(ids))
	for _, id := range ids {
		ps, err := ctx.PartialSign(byID[id], msg)
		require.NoError(t, err)
		require.NoError(t, ctx.VerifyPartial(ps, msg))
		partials = append(partials, ps)
	}
	return partials
}

const demoMsg = "Hello, BLS Threshold Signature!"

func TestThreeOfFiveCommittees(t *testing.T) {
	ctx, shares := setupCommittee(t, 3, 5)
	msg := []byte(demoMsg)

	committees := [][]int{{1, 3, 5}, {2, 4, 5}}
	for _, committee := range committees {
		partials := signWith(t, ctx, shares, committee, msg)
		sig, err := ctx.Combine(partials, msg)
		require.NoError(t, err, "committee %v", committee)
		require.NoError(t, ctx.Verify(msg, sig), "committee %v", committee)
	}
}

func TestAllPartiesUsesFirstT(t *testing.T) {
	ctx, shares := setupCommittee(t, 3, 5)
	msg := []byte(demoMsg)

	partials := signWith(t, ctx, shares, []int{1, 2, 3, 4, 5}, msg)
	sig, err := ctx.Combine(partials, msg)
	require.NoError(t, err)
	require.NoError(t, ctx.Verify(msg, sig))
}

func TestUndershootFailsWithInsufficientSigners(t *testing.T) {
	ctx, shares := setupCommittee(t, 3, 5)
	msg := []byte(demoMsg)

	partials := signWith(t, ctx, shares, []int{1, 2}, msg)
	_, err := ctx.Combine(partials, msg)
	require.True(t, ferr.Is(err, ferr.InsufficientSigners))
}

func TestTamperedMessageFailsVerification(t *testing.T) {
	ctx, shares := setupCommittee(t, 3, 5)
	msg := []byte(demoMsg)

	partials := signWith(t, ctx, shares, []int{1, 3, 5}, msg)
	sig, err := ctx.Combine(partials, msg)
	require.NoError(t, err)

	err = ctx.Verify([]byte("a different message entirely"), sig)
	require.True(t, ferr.Is(err, ferr.InvalidInput))
}

func TestUnknownSignerRejected(t *testing.T) {
	ctx, _ := setupCommittee(t, 3, 5)
	_, err := ctx.PublicShare(99)
	require.True(t, ferr.Is(err, ferr.UnknownParty))
}
