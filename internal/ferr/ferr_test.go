package ferr_test

import (
	"errors"
	"testing"

	"github.com/nimbus-labs/threshold/internal/ferr"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesKind(t *testing.T) {
	err := ferr.New(ferr.InsufficientSigners, "need 3, got 2")
	require.True(t, ferr.Is(err, ferr.InsufficientSigners))
	require.False(t, ferr.Is(err, ferr.InvalidInput))
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("boom")
	err := ferr.Wrap(ferr.InvalidInput, "bad point", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "boom")
}

func TestKindString(t *testing.T) {
	require.Equal(t, "UnknownParty", ferr.UnknownParty.String())
}
