// Package matrix_test contains unit tests for Matrix2x2 linear algebra.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mat2/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_Scenario1234(t *testing.T) {
	m := matrix.New(1, 2, 3, 4)
	assert.Equal(t, -2.0, m.Determinant())
	assert.Equal(t, -2.0, m.Eval(), "Eval must match Determinant")
	assert.Equal(t, 5.0, m.Trace())
	assert.False(t, m.IsSymmetric())
}

func TestIsSymmetric_Exact(t *testing.T) {
	assert.True(t, matrix.New(1, 7, 7, 4).IsSymmetric())
	assert.False(t, matrix.New(1, 7, 7+1e-12, 4).IsSymmetric(), "symmetry has no tolerance")
}

func TestIsSimilar(t *testing.T) {
	cases := []struct {
		name string
		a, b matrix.Matrix2x2
		want bool
	}{
		{"transpose", matrix.New(1, 2, 3, 4), matrix.New(1, 3, 2, 4), true},
		{"self", matrix.New(5, -1, 2, 0), matrix.New(5, -1, 2, 0), true},
		// identity vs shear share det and trace; the criterion accepts them.
		{"identity vs shear", matrix.Identity(), matrix.New(1, 1, 0, 1), true},
		{"different trace", matrix.New(1, 2, 3, 4), matrix.New(2, 0, 0, 2), false},
		{"same trace different det", matrix.New(1, 0, 0, 3), matrix.New(2, 0, 0, 2), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.IsSimilar(tc.b))
			assert.Equal(t, tc.want, tc.b.IsSimilar(tc.a))
		})
	}
}

func TestTranspose(t *testing.T) {
	m := matrix.New(1, 2, 3, 4)
	tr := m.Transpose()
	assert.Equal(t, matrix.New(1, 3, 2, 4), tr)
	assert.Equal(t, matrix.New(1, 2, 3, 4), m, "operand must not change")
	assert.Equal(t, m, tr.Transpose())
	assert.Equal(t, m.Determinant(), tr.Determinant())
	assert.Equal(t, m.Trace(), tr.Trace())
}

func TestInverse(t *testing.T) {
	inv, err := matrix.New(2, 0, 0, 2).Inverse()
	require.NoError(t, err)
	RequireMatrixEqual(t, matrix.New(0.5, 0, 0, 0.5), inv)

	inv, err = matrix.New(1, 2, 3, 4).Inverse()
	require.NoError(t, err)
	RequireMatrixEqual(t, matrix.New(-2, 1, 1.5, -0.5), inv)
}

func TestInverse_Singular(t *testing.T) {
	for _, m := range []matrix.Matrix2x2{
		matrix.Zero(),
		matrix.New(1, 2, 2, 4),
		matrix.New(1e-7, 0, 0, 1),
		matrix.New(1e-6, 0, 0, 1), // boundary: |det| ≤ eps is singular
		matrix.New(-1e-6, 0, 0, 1),
	} {
		_, err := m.Inverse()
		require.ErrorIs(t, err, matrix.ErrSingular, "%v", m.Array())
	}

	_, err := matrix.Zero().Inverse()
	assert.EqualError(t, err, "Inverse: matrix: inverse undefined")

	_, err = matrix.New(2e-6, 0, 0, 1).Inverse()
	require.NoError(t, err, "just above the tolerance is invertible")
}

func TestMul_NonCommutative(t *testing.T) {
	a := matrix.New(1, 2, 3, 4)
	b := matrix.New(5, 6, 7, 8)

	assert.Equal(t, matrix.New(19, 22, 43, 50), a.Mul(b))
	assert.Equal(t, matrix.New(23, 34, 31, 46), b.Mul(a))
	assert.Equal(t, matrix.New(1, 2, 3, 4), a, "Mul must not mutate")
}

func TestMulAssign_InPlaceAndSelf(t *testing.T) {
	m := matrix.New(1, 2, 3, 4)
	ret := m.MulAssign(matrix.New(5, 6, 7, 8))
	assert.Same(t, &m, ret, "MulAssign returns the receiver")
	assert.Equal(t, matrix.New(19, 22, 43, 50), m)

	sq := matrix.New(1, 2, 3, 4)
	sq.MulAssign(sq)
	assert.Equal(t, matrix.New(7, 10, 15, 22), sq)
}

func TestDiv(t *testing.T) {
	q, err := matrix.New(19, 22, 43, 50).Div(matrix.New(5, 6, 7, 8))
	require.NoError(t, err)
	RequireMatrixEqual(t, matrix.New(1, 2, 3, 4), q)

	_, err = matrix.New(1, 2, 3, 4).Div(matrix.Zero())
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.EqualError(t, err, "Div: Inverse: matrix: inverse undefined")
}

func TestDivAssign(t *testing.T) {
	m := matrix.New(19, 22, 43, 50)
	ret, err := m.DivAssign(matrix.New(5, 6, 7, 8))
	require.NoError(t, err)
	assert.Same(t, &m, ret)
	RequireMatrixEqual(t, matrix.New(1, 2, 3, 4), m)

	m = matrix.New(1, 2, 3, 4)
	_, err = m.DivAssign(matrix.New(1, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, matrix.New(1, 2, 3, 4), m, "receiver untouched on error")
}

// TestInverse_FoldsNegativeZero pins the +0 off-diagonal of a diagonal inverse.
func TestInverse_FoldsNegativeZero(t *testing.T) {
	inv, err := matrix.New(2, 0, 0, 2).Inverse()
	require.NoError(t, err)

	assert.False(t, math.Signbit(inv.B))
	assert.False(t, math.Signbit(inv.C))
	assert.Equal(t, "|0.50 0.00|\n|         |\n|0.00 0.50|\n", inv.String())
}
