package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/mapx"
	"github.com/msto63/gauss/foundation/utils/mathx"
)

var calcSave string

type calcOp struct {
	arity int
	usage string
	run   func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error)
}

func exact(f func(a, b mathx.Decimal) mathx.Decimal) func([]mathx.Decimal, mathx.Context) (mathx.Decimal, error) {
	return func(x []mathx.Decimal, _ mathx.Context) (mathx.Decimal, error) {
		return f(x[0], x[1]), nil
	}
}

func withPlaces(f func(d mathx.Decimal, places int, ctx mathx.Context) mathx.Decimal) func([]mathx.Decimal, mathx.Context) (mathx.Decimal, error) {
	return func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
		places, err := x[1].Int64()
		if err != nil {
			return mathx.Decimal{}, err
		}
		if places > int64(mathx.MaxPrecision) || places < -int64(mathx.MaxPrecision) {
			return mathx.Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "round", places,
				fmt.Sprintf("places must be within ±%d", mathx.MaxPrecision))
		}
		return f(x[0], int(places), ctx), nil
	}
}

var calcOps = map[string]calcOp{
	"add": {2, "a b", exact(mathx.Decimal.Add)},
	"sub": {2, "a b", exact(mathx.Decimal.Subtract)},
	"mul": {2, "a b", exact(mathx.Decimal.Multiply)},
	"min": {2, "a b", exact(mathx.Decimal.Min)},
	"max": {2, "a b", exact(mathx.Decimal.Max)},
	"div": {2, "a b", func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
		return x[0].Divide(x[1], ctx)
	}},
	"pow": {2, "base exponent", func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
		return x[0].Power(x[1], ctx)
	}},
	"root": {2, "x n", func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
		n, err := x[1].Int64()
		if err != nil {
			return mathx.Decimal{}, err
		}
		return x[0].NthRoot(n, ctx)
	}},
	"sqrt": {1, "x", func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
		return x[0].Sqrt(ctx)
	}},
	"abs": {1, "x", func(x []mathx.Decimal, _ mathx.Context) (mathx.Decimal, error) {
		return x[0].Abs(), nil
	}},
	"neg": {1, "x", func(x []mathx.Decimal, _ mathx.Context) (mathx.Decimal, error) {
		return x[0].Neg(), nil
	}},
	"round": {2, "x places", withPlaces(func(d mathx.Decimal, places int, ctx mathx.Context) mathx.Decimal {
		return d.Round(places, ctx.Rounding)
	})},
	"trunc": {2, "x places", withPlaces(func(d mathx.Decimal, places int, _ mathx.Context) mathx.Decimal {
		return d.Truncate(places)
	})},
	"gcd": {2, "a b", func(x []mathx.Decimal, _ mathx.Context) (mathx.Decimal, error) {
		return mathx.GCD(x[0], x[1])
	}},
	"lcm": {2, "a b", func(x []mathx.Decimal, _ mathx.Context) (mathx.Decimal, error) {
		return mathx.LCM(x[0], x[1])
	}},
	"fact": {1, "n", func(x []mathx.Decimal, _ mathx.Context) (mathx.Decimal, error) {
		return mathx.Factorial(x[0])
	}},
	"comb": {2, "n k", func(x []mathx.Decimal, _ mathx.Context) (mathx.Decimal, error) {
		return mathx.Combination(x[0], x[1])
	}},
	"perm": {2, "n k", func(x []mathx.Decimal, _ mathx.Context) (mathx.Decimal, error) {
		return mathx.Permutation(x[0], x[1])
	}},
	"ln": {1, "x", func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
		return mathx.Ln(x[0], ctx)
	}},
	"log10": {1, "x", func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
		return mathx.Log10(x[0], ctx)
	}},
	"log": {2, "x base", func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
		return mathx.Log(x[0], x[1], ctx)
	}},
	"exp": {1, "x", func(x []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
		return mathx.Exp(x[0], ctx)
	}},
}

func opList[T any](ops map[string]T, usage func(T) string) string {
	var b strings.Builder
	for _, name := range mapx.SortedKeys(ops) {
		fmt.Fprintf(&b, "  %-10s %s\n", name, usage(ops[name]))
	}
	return b.String()
}

var calcCmd = &cobra.Command{
	Use:   "calc <op> <operand>...",
	Short: "Evaluate one arithmetic operation",
	Long: `Evaluate one arithmetic operation on exact decimals. Operands are read in
the session locale or from the workspace (@name). Inexact results are
rounded to --precision significant digits.

Operations:
` + opList(calcOps, func(op calcOp) string { return op.usage }),
	Example: `  gauss calc div 1 3 -p 10
  gauss -l de-DE calc add 1.234,5 0,5
  gauss calc mul @price 3 --save total`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&calcSave, "save", "", "store the result in the workspace under this name")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	op, ok := calcOps[args[0]]
	if !ok {
		return errors.InvalidArgument(errors.ModuleMathx, "calc", args[0], "unknown operation")
	}

	timer := sess.logger.StartTimer("calc").WithField("op", args[0])
	operands, err := sess.decimals(ctx, args[1:])
	if err == nil && len(operands) != op.arity {
		err = errors.InvalidArgument(errors.ModuleMathx, args[0], strings.Join(args[1:], " "),
			fmt.Sprintf("expects %d operand(s): %s", op.arity, op.usage))
	}
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	result, err := op.run(operands, sess.settings.MathContext())
	timer.StopWithError(err)
	if err != nil {
		return err
	}

	if err := sess.saveValue(ctx, calcSave, result); err != nil {
		return err
	}
	if calcSave != "" {
		sess.logger.Debug("result saved", log.String("name", calcSave))
	}

	text, err := sess.out.Value(result)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
