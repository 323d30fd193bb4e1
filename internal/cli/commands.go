// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/mat2/matrix"
	"github.com/spf13/cobra"
)

// binaryOps maps "mat2 calc" operations to matrix methods.
var binaryOps = map[string]func(l, r matrix.Matrix2x2) (matrix.Matrix2x2, error){
	"add": func(l, r matrix.Matrix2x2) (matrix.Matrix2x2, error) { return l.Add(r), nil },
	"sub": func(l, r matrix.Matrix2x2) (matrix.Matrix2x2, error) { return l.Sub(r), nil },
	"mul": func(l, r matrix.Matrix2x2) (matrix.Matrix2x2, error) { return l.Mul(r), nil },
	"div": func(l, r matrix.Matrix2x2) (matrix.Matrix2x2, error) { return l.Div(r) },
}

// scalarOp holds both operand orders of one "mat2 scalar" operation.
type scalarOp struct {
	right func(m matrix.Matrix2x2, s float64) (matrix.Matrix2x2, error) // m ⊕ s
	left  func(s float64, m matrix.Matrix2x2) (matrix.Matrix2x2, error) // s ⊕ m
}

// scalarOps maps "mat2 scalar" operations to matrix methods and functions.
var scalarOps = map[string]scalarOp{
	"add": {
		right: func(m matrix.Matrix2x2, s float64) (matrix.Matrix2x2, error) { return m.AddScalar(s), nil },
		left:  func(s float64, m matrix.Matrix2x2) (matrix.Matrix2x2, error) { return matrix.ScalarAdd(s, m), nil },
	},
	"sub": {
		right: func(m matrix.Matrix2x2, s float64) (matrix.Matrix2x2, error) { return m.SubScalar(s), nil },
		left:  func(s float64, m matrix.Matrix2x2) (matrix.Matrix2x2, error) { return matrix.ScalarSub(s, m), nil },
	},
	"mul": {
		right: func(m matrix.Matrix2x2, s float64) (matrix.Matrix2x2, error) { return m.MulScalar(s), nil },
		left:  func(s float64, m matrix.Matrix2x2) (matrix.Matrix2x2, error) { return matrix.ScalarMul(s, m), nil },
	},
	"div": {
		right: func(m matrix.Matrix2x2, s float64) (matrix.Matrix2x2, error) { return m.DivScalar(s), nil },
		left:  matrix.ScalarDiv,
	},
}

// opNames lists the keys of an op table in sorted order for help and errors.
func opNames[V any](ops map[string]V) string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, "|")
}

// numericCmd applies the settings every matrix-reading command shares.
// Interspersed flags are off so that "-2" is read as a number.
func numericCmd(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	return numericCmd(&cobra.Command{
		Use:     "inspect [a b c d]",
		Short:   "Report determinant, trace, inverse and eigenvalues of a matrix",
		Example: "  mat2 inspect 1 2 3 4\n  echo 0 -1 1 0 | mat2 inspect -o yaml",
		RunE: func(_ *cobra.Command, args []string) error {
			ms, err := a.readMatrices(args, 1)
			if err != nil {
				return err
			}
			r := newInspectReport(ms[0])
			if r.Inverse == nil {
				a.logger.Debug("matrix is singular", "determinant", r.Determinant)
			}

			return a.emit(r)
		},
	})
}

func (a *app) calcCmd() *cobra.Command {
	return numericCmd(&cobra.Command{
		Use:     "calc <" + opNames(binaryOps) + "> [a b c d e f g h]",
		Short:   "Combine two matrices: left <op> right",
		Example: "  mat2 calc mul 1 2 3 4 5 6 7 8\n  mat2 calc -f pair.yaml div",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("missing operation (%s)", opNames(binaryOps))
			}
			op, ok := binaryOps[args[0]]
			if !ok {
				return usageErrorf("unknown operation %q (%s)", args[0], opNames(binaryOps))
			}
			ms, err := a.readMatrices(args[1:], 2)
			if err != nil {
				return err
			}
			res, err := op(ms[0], ms[1])
			if err != nil {
				return fmt.Errorf("calc %s: %w", args[0], err)
			}
			a.logger.Debug("calc done", "op", args[0])

			return a.emit(binaryReport{Op: args[0], Left: ms[0], Right: ms[1], Result: res})
		},
	})
}

func (a *app) scalarCmd() *cobra.Command {
	var left bool
	cmd := numericCmd(&cobra.Command{
		Use:     "scalar [--left] <" + opNames(scalarOps) + "> <s> [a b c d]",
		Short:   "Combine a matrix with a scalar: matrix <op> s, or s <op> matrix with --left",
		Example: "  mat2 scalar mul 2 1 2 3 4\n  mat2 scalar --left sub 10 1 2 3 4",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return usageErrorf("expected an operation (%s) and a scalar", opNames(scalarOps))
			}
			op, ok := scalarOps[args[0]]
			if !ok {
				return usageErrorf("unknown operation %q (%s)", args[0], opNames(scalarOps))
			}
			s, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return usageErrorf("scalar: %v", err)
			}
			ms, err := a.readMatrices(args[2:], 1)
			if err != nil {
				return err
			}

			var res matrix.Matrix2x2
			if left {
				res, err = op.left(s, ms[0])
			} else {
				res, err = op.right(ms[0], s)
			}
			if err != nil {
				return fmt.Errorf("scalar %s: %w", args[0], err)
			}

			return a.emit(scalarReport{Op: args[0], Scalar: s, ScalarLeft: left, Matrix: ms[0], Result: res})
		},
	})
	cmd.Flags().BoolVar(&left, "left", false, "put the scalar on the left (s <op> matrix)")

	return cmd
}

func (a *app) compareCmd() *cobra.Command {
	return numericCmd(&cobra.Command{
		Use:   "compare [a b c d e f g h]",
		Short: "Check two matrices for equality (within 1e-6) and similarity (trace and determinant)",
		RunE: func(_ *cobra.Command, args []string) error {
			ms, err := a.readMatrices(args, 2)
			if err != nil {
				return err
			}

			return a.emit(compareReport{
				Left:    ms[0],
				Right:   ms[1],
				Equal:   ms[0].Equal(ms[1]),
				Similar: ms[0].IsSimilar(ms[1]),
			})
		},
	})
}

func (a *app) eigenCmd() *cobra.Command {
	return numericCmd(&cobra.Command{
		Use:   "eigen <1|2> [a b c d]",
		Short: "Print one eigenvalue of a matrix",
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("missing eigenvalue selector (1 or 2)")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return usageErrorf("selector: %v", err)
			}
			ms, err := a.readMatrices(args[1:], 1)
			if err != nil {
				return err
			}
			e, err := ms[0].Eigen(n)
			if errors.Is(err, matrix.ErrOutOfRange) {
				return fmt.Errorf("%w: eigen %d: %w", ErrUsage, n, err)
			}
			if err != nil {
				return err
			}

			return a.emit(eigenReport{Matrix: ms[0], N: n, Eigenvalue: e})
		},
	})
}
