package field_test

import (
	"math/big"
	"testing"

	"github.com/nimbus-labs/threshold/internal/ferr"
	"github.com/nimbus-labs/threshold/pkg/field"
	"github.com/stretchr/testify/require"
)

// A small prime keeps the arithmetic easy to check by hand.
var p13 = field.New(big.NewInt(13))

func TestAddSubMul(t *testing.T) {
	a := big.NewInt(9)
	b := big.NewInt(7)
	require.Equal(t, big.NewInt(3), p13.Add(a, b)) // 16 mod 13
	require.Equal(t, big.NewInt(2), p13.Sub(a, b)) // 2 mod 13
	require.Equal(t, big.NewInt(11), p13.Mul(a, b))
}

func TestPow(t *testing.T) {
	// 2^10 = 1024 = 78*13 + 10
	require.Equal(t, big.NewInt(10), p13.Pow(big.NewInt(2), big.NewInt(10)))
}

func TestInverse(t *testing.T) {
	for v := int64(1); v < 13; v++ {
		inv, err := p13.Inverse(big.NewInt(v))
		require.NoError(t, err)
		require.True(t, p13.Equal(p13.Mul(big.NewInt(v), inv), big.NewInt(1)))
	}
}

func TestInverseOfZeroFails(t *testing.T) {
	_, err := p13.Inverse(big.NewInt(0))
	require.True(t, ferr.Is(err, ferr.InvalidInput))
}

func TestRandomInRange(t *testing.T) {
	bigP := field.New(big.NewInt(0).SetBytes([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xfd}))
	for i := 0; i < 20; i++ {
		v, err := bigP.Random(nil)
		require.NoError(t, err)
		require.True(t, v.Sign() >= 0)
		require.True(t, v.Cmp(bigP.Modulus()) < 0)
	}
}
