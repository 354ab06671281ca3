// Package sharing implements (t, n) Shamir secret sharing over a prime-order
// field.Field: polynomial sampling, evaluation, Lagrange-at-zero
// coefficients, and secret reconstruction. Both the BLS and ECDSA threshold
// packages build on this substrate, per the design that Lagrange
// reconstruction commutes with the exponentiation/scalar-multiplication each
// scheme layers on top.
package sharing

import (
	"io"
	"math/big"

	"github.com/nimbus-labs/threshold/internal/ferr"
	"github.com/nimbus-labs/threshold/pkg/field"
)

// Polynomial is a₀ + a₁·x + … + a_{t-1}·x^{t-1}, with a₀ the shared secret.
// It is created once per key issuance, used to derive shares, and discarded;
// callers should not retain it past CreateShares.
type Polynomial struct {
	f      field.Field
	coeffs []*big.Int
}

// GeneratePolynomial samples a degree (t-1) polynomial with constant term
// secret and uniformly random higher coefficients.
func GeneratePolynomial(f field.Field, secret *big.Int, t int, rnd io.Reader) (*Polynomial, error) {
	if t < 1 {
		return nil, ferr.New(ferr.InvalidConfig, "threshold must be at least 1")
	}
	coeffs := make([]*big.Int, t)
	coeffs[0] = new(big.Int).Set(secret)
	for i := 1; i < t; i++ {
		c, err := f.Random(rnd)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return &Polynomial{f: f, coeffs: coeffs}, nil
}

// Threshold returns the number of coefficients (t) of the polynomial.
func (p *Polynomial) Threshold() int { return len(p.coeffs) }

// Evaluate computes Σ aᵢ·xⁱ mod p using Horner's method.
func (p *Polynomial) Evaluate(x *big.Int) *big.Int {
	result := p.f.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = p.f.Add(p.f.Mul(result, x), p.coeffs[i])
	}
	return result
}

// Share is one party's evaluation (x, y) of a Polynomial. x is the party's
// nonzero identifier in {1, …, n}; for a given polynomial, x values across a
// share set must be pairwise distinct or Lagrange interpolation fails.
type Share struct {
	X *big.Int
	Y *big.Int
}

// CreateShares samples a fresh degree (t-1) polynomial with constant term
// secret and evaluates it at x = 1, …, n, in that order.
func CreateShares(f field.Field, secret *big.Int, t, n int, rnd io.Reader) ([]Share, error) {
	if t < 1 || n < t {
		return nil, ferr.New(ferr.InvalidConfig, "require 1 <= t <= n")
	}
	poly, err := GeneratePolynomial(f, secret, t, rnd)
	if err != nil {
		return nil, err
	}
	shares := make([]Share, n)
	for i := 0; i < n; i++ {
		x := big.NewInt(int64(i + 1))
		shares[i] = Share{X: x, Y: poly.Evaluate(x)}
	}
	return shares, nil
}

// LagrangeCoefficient computes the weight Lᵢ = Πⱼ≠ᵢ (-xⱼ)·(xᵢ-xⱼ)⁻¹ mod p for
// the i-th x-value in xs, i.e. the interpolating polynomial through
// (xs[k], ·) evaluated at x = 0. It fails with InvalidInput if xs[i]
// appears more than once in xs; duplicates among the other x-values are not
// detected by this call.
func LagrangeCoefficient(f field.Field, xs []*big.Int, i int) (*big.Int, error) {
	if i < 0 || i >= len(xs) {
		return nil, ferr.New(ferr.InvalidInput, "lagrange index out of range")
	}
	xi := xs[i]
	num := f.One()
	den := f.One()
	for j, xj := range xs {
		if j == i {
			continue
		}
		diff := f.Sub(xi, xj)
		if f.IsZero(diff) {
			return nil, ferr.New(ferr.InvalidInput, "duplicate x-value in share set")
		}
		num = f.Mul(num, f.Neg(xj))
		den = f.Mul(den, diff)
	}
	denInv, err := f.Inverse(den)
	if err != nil {
		return nil, err
	}
	return f.Mul(num, denInv), nil
}

// Reconstruct recovers the constant term (the shared secret, or the value of
// any affine function of it) from at least t shares, using the first t in
// the supplied order. It fails with InsufficientSigners if fewer than t
// shares are given.
func Reconstruct(f field.Field, shares []Share, t int) (*big.Int, error) {
	if len(shares) < t {
		return nil, ferr.New(ferr.InsufficientSigners, "need at least t shares to reconstruct")
	}
	selected := shares[:t]
	xs := make([]*big.Int, len(selected))
	for i, s := range selected {
		xs[i] = s.X
	}
	secret := f.Zero()
	for i, s := range selected {
		li, err := LagrangeCoefficient(f, xs, i)
		if err != nil {
			return nil, err
		}
		secret = f.Add(secret, f.Mul(li, s.Y))
	}
	return secret, nil
}
