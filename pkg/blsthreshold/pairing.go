package blsthreshold

import (
	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"
)

// pair always calls the suite's pairing with the G1 point first and the G2
// point second, matching kyber/sign/bls's own convention (see
// NewSchemeOnG1/NewSchemeOnG2, where e(H(m), public) is always paired as
// Pair(g1Point, g2Point) regardless of which side carries the key or the
// signature). Keeping one helper means the convention is decided once, not
// re-derived at each call site.
func pair(suite pairing.Suite, g1Point, g2Point kyber.Point) kyber.Point {
	return suite.Pair(g1Point, g2Point)
}

// pairingsEqual reports whether e(g1a, g2a) == e(g1b, g2b).
func pairingsEqual(suite pairing.Suite, g1a, g2a, g1b, g2b kyber.Point) bool {
	return pair(suite, g1a, g2a).Equal(pair(suite, g1b, g2b))
}
