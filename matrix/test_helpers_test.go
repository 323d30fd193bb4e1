// Package matrix_test contains shared helpers for Matrix2x2 tests.
package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mat2/matrix"
)

// errWrite is returned by failingWriter.
var errWrite = errors.New("test: write failed")

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

// RequireMatrixEqual fails the test unless got == want within matrix.Epsilon.
func RequireMatrixEqual(t *testing.T, want, got matrix.Matrix2x2) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("matrix mismatch:\nwant %v\ngot  %v", want.Array(), got.Array())
	}
}

// RandomIntMatrix fills a matrix with integers in [-9,9] from rng.
// Integer entries keep products exact, so properties can be checked tightly.
func RandomIntMatrix(rng *rand.Rand) matrix.Matrix2x2 {
	next := func() float64 { return float64(rng.Intn(19) - 9) }

	return matrix.New(next(), next(), next(), next())
}

// RandomInvertible draws RandomIntMatrix until |det| ≥ 1.
func RandomInvertible(rng *rand.Rand) matrix.Matrix2x2 {
	for {
		m := RandomIntMatrix(rng)
		if d := m.Determinant(); d >= 1 || d <= -1 {
			return m
		}
	}
}
