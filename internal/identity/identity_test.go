package identity_test

import (
	"testing"

	"github.com/nimbus-labs/threshold/internal/identity"
	"github.com/stretchr/testify/require"
)

func TestFingerprintIsStableAndShort(t *testing.T) {
	key := []byte("a fake public key for testing")
	f1 := identity.Fingerprint(key)
	f2 := identity.Fingerprint(key)
	require.Equal(t, f1, f2)
	require.Len(t, f1, 16)
}

func TestFingerprintDiffersByInput(t *testing.T) {
	require.NotEqual(t, identity.Fingerprint([]byte("a")), identity.Fingerprint([]byte("b")))
}
