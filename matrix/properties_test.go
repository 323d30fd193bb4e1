// Package matrix_test checks algebraic identities over many random matrices.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mat2/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertyRounds = 500

func TestProperty_TransposeInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < propertyRounds; i++ {
		m := RandomIntMatrix(rng)
		require.True(t, m.Transpose().Transpose().Equal(m))
		require.Equal(t, m.Determinant(), m.Transpose().Determinant())
		require.Equal(t, m.Trace(), m.Transpose().Trace())
	}
}

func TestProperty_InverseGivesIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < propertyRounds; i++ {
		m := RandomInvertible(rng)
		inv, err := m.Inverse()
		require.NoError(t, err)
		RequireMatrixEqual(t, matrix.Identity(), m.Mul(inv))
		RequireMatrixEqual(t, matrix.Identity(), inv.Mul(m))
	}
}

func TestProperty_ScaleThenUnscale(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < propertyRounds; i++ {
		m := RandomIntMatrix(rng)
		s := float64(rng.Intn(199)-99) + 0.5 // never zero
		RequireMatrixEqual(t, m, m.MulScalar(s).DivScalar(s))
	}
}

func TestProperty_RealEigenSumProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < propertyRounds; i++ {
		m := RandomIntMatrix(rng)
		e1, e2 := m.Eigenvalues()
		if e1.IsComplex() {
			// conjugate pair: equal real parts, opposite imaginary parts.
			assert.Equal(t, e1.Real, e2.Real)
			assert.Equal(t, e1.Imag, -e2.Imag)
			assert.Less(t, m.Discriminant(), 0.0)
			continue
		}
		assert.InDelta(t, m.Trace(), e1.Real+e2.Real, 1e-9)
		assert.InDelta(t, m.Determinant(), e1.Real*e2.Real, 1e-9)
		assert.GreaterOrEqual(t, e1.Real, e2.Real)
	}
}

func TestProperty_IndexRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	var m matrix.Matrix2x2
	for i := 0; i < propertyRounds; i++ {
		idx := rng.Intn(4)
		v := rng.NormFloat64()
		require.NoError(t, m.Set(idx, v))
		got, err := m.At(idx)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestProperty_ScalarSubIsNegatedDifference(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < propertyRounds; i++ {
		m := RandomIntMatrix(rng)
		s := float64(rng.Intn(21) - 10)
		want := matrix.New(s-m.A, s-m.B, s-m.C, s-m.D)
		RequireMatrixEqual(t, want, matrix.ScalarSub(s, m))
		RequireMatrixEqual(t, m.SubScalar(s).Neg(), matrix.ScalarSub(s, m))
	}
}
