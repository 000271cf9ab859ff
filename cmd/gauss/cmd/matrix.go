package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/utils/linalgx"
	"github.com/msto63/gauss/foundation/utils/mathx"
)

var matrixSave string

// matrixResult is either a matrix or a scalar
type matrixResult struct {
	matrix *linalgx.Matrix
	scalar mathx.Decimal
}

type matrixOp struct {
	usage string
	run   func(ctx context.Context, args []string) (matrixResult, error)
}

func unaryMatrix(f func(m *linalgx.Matrix) (*linalgx.Matrix, error)) matrixOp {
	return matrixOp{"A", func(ctx context.Context, args []string) (matrixResult, error) {
		if err := expectOperands(args, 1, "A"); err != nil {
			return matrixResult{}, err
		}
		m, err := sess.matrix(ctx, args[0])
		if err != nil {
			return matrixResult{}, err
		}
		out, err := f(m)
		return matrixResult{matrix: out}, err
	}}
}

func binaryMatrix(f func(a, b *linalgx.Matrix) (*linalgx.Matrix, error)) matrixOp {
	return matrixOp{"A B", func(ctx context.Context, args []string) (matrixResult, error) {
		if err := expectOperands(args, 2, "A B"); err != nil {
			return matrixResult{}, err
		}
		a, err := sess.matrix(ctx, args[0])
		if err != nil {
			return matrixResult{}, err
		}
		b, err := sess.matrix(ctx, args[1])
		if err != nil {
			return matrixResult{}, err
		}
		out, err := f(a, b)
		return matrixResult{matrix: out}, err
	}}
}

func scalarMatrix(f func(m *linalgx.Matrix) (mathx.Decimal, error)) matrixOp {
	return matrixOp{"A", func(ctx context.Context, args []string) (matrixResult, error) {
		if err := expectOperands(args, 1, "A"); err != nil {
			return matrixResult{}, err
		}
		m, err := sess.matrix(ctx, args[0])
		if err != nil {
			return matrixResult{}, err
		}
		v, err := f(m)
		return matrixResult{scalar: v}, err
	}}
}

// indexedMatrix runs f with a matrix and two zero-based indexes
func indexedMatrix(f func(m *linalgx.Matrix, i, j int) (mathx.Decimal, error)) matrixOp {
	return matrixOp{"A i j", func(ctx context.Context, args []string) (matrixResult, error) {
		if err := expectOperands(args, 3, "A i j"); err != nil {
			return matrixResult{}, err
		}
		m, err := sess.matrix(ctx, args[0])
		if err != nil {
			return matrixResult{}, err
		}
		i, err := sess.integer(ctx, args[1])
		if err != nil {
			return matrixResult{}, err
		}
		j, err := sess.integer(ctx, args[2])
		if err != nil {
			return matrixResult{}, err
		}
		v, err := f(m, i, j)
		return matrixResult{scalar: v}, err
	}}
}

func expectOperands(args []string, n int, usage string) error {
	if len(args) != n {
		return errors.InvalidArgument(errors.ModuleLinalgx, "matrix", strings.Join(args, " "),
			fmt.Sprintf("expects %d operand(s): %s", n, usage))
	}
	return nil
}

var matrixOps = map[string]matrixOp{
	"show":      unaryMatrix(func(m *linalgx.Matrix) (*linalgx.Matrix, error) { return m, nil }),
	"neg":       unaryMatrix(func(m *linalgx.Matrix) (*linalgx.Matrix, error) { return m.Negate(), nil }),
	"transpose": unaryMatrix(func(m *linalgx.Matrix) (*linalgx.Matrix, error) { return m.Transpose(), nil }),
	"inverse":   unaryMatrix((*linalgx.Matrix).Inverse),
	"adjugate":  unaryMatrix((*linalgx.Matrix).Adjugate),
	"add":       binaryMatrix((*linalgx.Matrix).Add),
	"sub":       binaryMatrix((*linalgx.Matrix).Subtract),
	"mul":       binaryMatrix((*linalgx.Matrix).Multiply),
	"det":       scalarMatrix((*linalgx.Matrix).Determinant),
	"trace":     scalarMatrix((*linalgx.Matrix).Trace),
	"sum":       scalarMatrix((*linalgx.Matrix).SumElements),
	"min":       scalarMatrix((*linalgx.Matrix).Min),
	"max":       scalarMatrix((*linalgx.Matrix).Max),
	"minor":     indexedMatrix((*linalgx.Matrix).Minor),
	"cofactor":  indexedMatrix((*linalgx.Matrix).Cofactor),
	"scale": {"A k", func(ctx context.Context, args []string) (matrixResult, error) {
		if err := expectOperands(args, 2, "A k"); err != nil {
			return matrixResult{}, err
		}
		m, err := sess.matrix(ctx, args[0])
		if err != nil {
			return matrixResult{}, err
		}
		k, err := sess.decimal(ctx, args[1])
		if err != nil {
			return matrixResult{}, err
		}
		return matrixResult{matrix: m.ScalarMultiply(k)}, nil
	}},
	"pow": {"A n", func(ctx context.Context, args []string) (matrixResult, error) {
		if err := expectOperands(args, 2, "A n"); err != nil {
			return matrixResult{}, err
		}
		m, err := sess.matrix(ctx, args[0])
		if err != nil {
			return matrixResult{}, err
		}
		n, err := sess.integer(ctx, args[1])
		if err != nil {
			return matrixResult{}, err
		}
		out, err := m.Power(n)
		return matrixResult{matrix: out}, err
	}},
}

var matrixCmd = &cobra.Command{
	Use:   "matrix <op> <operand>...",
	Short: "Run a matrix operation",
	Long: `Run one operation on decimal matrices. Matrices are written with ';'
between rows and ',' between cells ('|' in locales with a decimal comma),
or read from the workspace (@name). Indexes are zero based.

Operations:
` + opList(matrixOps, func(op matrixOp) string { return op.usage }),
	Example: `  gauss matrix det "1,2;3,4"
  gauss -l de-DE matrix inverse "2|0;0|0,5"
  gauss matrix mul @a @b --save c`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatrix,
}

func init() {
	matrixCmd.Flags().StringVar(&matrixSave, "save", "", "store the result in the workspace under this name")
	rootCmd.AddCommand(matrixCmd)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	op, ok := matrixOps[args[0]]
	if !ok {
		return errors.InvalidArgument(errors.ModuleLinalgx, "matrix", args[0], "unknown operation")
	}

	timer := sess.logger.StartTimer("matrix").WithField("op", args[0])
	res, err := op.run(ctx, args[1:])
	timer.StopWithError(err)
	if err != nil {
		return err
	}

	var text string
	if res.matrix != nil {
		if err := sess.saveMatrix(ctx, matrixSave, res.matrix); err != nil {
			return err
		}
		text, err = sess.out.Matrix(res.matrix)
	} else {
		if err := sess.saveValue(ctx, matrixSave, res.scalar); err != nil {
			return err
		}
		text, err = sess.out.Value(res.scalar)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
