package blsthreshold

import (
	"crypto/sha256"
	"math/big"

	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"
)

// scalarOrder is the order r of the BLS12-381 scalar field, the subgroup
// order of both G1 and G2. Hardcoded rather than queried from the suite so
// the hash-to-scalar reduction below is explicit about what it reduces
// against.
var scalarOrder, _ = new(big.Int).SetString(
	"73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// scalarByteLen is the big-endian width kyber's BLS12-381 Scalar expects
// from (Un)MarshalBinary.
const scalarByteLen = 32

// HashToG1 maps an arbitrary message to a point in G1 by reducing SHA-256(m)
// modulo the scalar field order and multiplying the G1 generator by the
// result. This is not the RFC 9380 hash-to-curve construction used
// elsewhere in the ecosystem; it is a simpler, fully deterministic mapping
// chosen so independent parties always agree on H(m) without needing a
// shared domain-separation tag.
func HashToG1(suite pairing.Suite, msg []byte) kyber.Point {
	digest := sha256.Sum256(msg)
	i := new(big.Int).SetBytes(digest[:])
	i.Mod(i, scalarOrder)
	return suite.G1().Point().Mul(bigIntToScalar(suite.G1(), i), nil)
}

func bigIntToScalar(group kyber.Group, v *big.Int) kyber.Scalar {
	buf := make([]byte, scalarByteLen)
	reduced := new(big.Int).Mod(v, scalarOrder)
	reduced.FillBytes(buf)
	s := group.Scalar()
	if err := s.UnmarshalBinary(buf); err != nil {
		// Only reachable if scalarByteLen stops matching the suite's
		// scalar encoding; both are fixed constants of BLS12-381.
		panic(err)
	}
	return s
}
