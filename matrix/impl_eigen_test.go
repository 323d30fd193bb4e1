package matrix_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/mat2/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEigen_RealEqualRoots covers the Δ == 0 branch with the identity.
func TestEigen_RealEqualRoots(t *testing.T) {
	m := matrix.Identity()
	assert.Equal(t, 0.0, m.Discriminant())

	e1, err := m.Eigen(matrix.EigenFirst)
	require.NoError(t, err)
	e2, err := m.Eigen(matrix.EigenSecond)
	require.NoError(t, err)

	assert.Equal(t, matrix.RealEigenvalue(1), e1)
	assert.Equal(t, matrix.RealEigenvalue(1), e2)
	assert.Equal(t, []float64{1}, e1.Values())
	assert.Equal(t, []float64{1}, e2.Values())
}

// TestEigen_ComplexPair covers Δ < 0 with a 90° rotation.
func TestEigen_ComplexPair(t *testing.T) {
	m := matrix.New(0, -1, 1, 0)
	assert.Equal(t, -4.0, m.Discriminant())

	e1, err := m.Eigen(1)
	require.NoError(t, err)
	e2, err := m.Eigen(2)
	require.NoError(t, err)

	assert.True(t, e1.IsComplex())
	assert.True(t, e2.IsComplex())
	assert.Equal(t, []float64{0, 1}, e1.Values())
	assert.Equal(t, []float64{0, -1}, e2.Values())
	assert.Equal(t, "0+1i", e1.String())
	assert.Equal(t, "0-1i", e2.String())
}

func TestEigen_RealDistinct(t *testing.T) {
	e1, e2 := matrix.New(2, 0, 0, 3).Eigenvalues()
	assert.Equal(t, matrix.RealEigenvalue(3), e1, "first root takes +√Δ")
	assert.Equal(t, matrix.RealEigenvalue(2), e2)
	assert.False(t, e1.IsComplex())
	assert.Equal(t, "3", e1.String())
}

func TestEigen_SumAndProduct(t *testing.T) {
	m := matrix.New(1, 2, 3, 4)
	e1, e2 := m.Eigenvalues()
	require.False(t, e1.IsComplex())
	assert.InDelta(t, m.Trace(), e1.Real+e2.Real, 1e-12)
	assert.InDelta(t, m.Determinant(), e1.Real*e2.Real, matrix.Epsilon)
}

func TestEigen_BadSelector(t *testing.T) {
	m := matrix.New(1, 2, 3, 4)
	for _, n := range []int{-1, 0, 3} {
		_, err := m.Eigen(n)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "n=%d", n)
	}
	_, err := m.Eigen(0)
	assert.EqualError(t, err, "Eigen: matrix: index out of bounds")
}

func TestEigenKind_String(t *testing.T) {
	assert.Equal(t, "real", matrix.EigenReal.String())
	assert.Equal(t, "complex", matrix.EigenComplex.String())
	assert.Equal(t, "EigenKind(9)", matrix.EigenKind(9).String())
}

// TestEigenvalue_JSON checks the kind is written as text and read back.
func TestEigenvalue_JSON(t *testing.T) {
	pair := []matrix.Eigenvalue{matrix.RealEigenvalue(3), matrix.ComplexEigenvalue(0.5, -2)}

	data, err := json.Marshal(pair)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"kind":"real","real":3},{"kind":"complex","real":0.5,"imag":-2}]`, string(data))

	var back []matrix.Eigenvalue
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, pair, back)

	_, err = json.Marshal(matrix.Eigenvalue{Kind: matrix.EigenKind(9)})
	require.Error(t, err)

	var bad matrix.Eigenvalue
	require.Error(t, json.Unmarshal([]byte(`{"kind":"imaginary"}`), &bad))
}
