package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/slicex"
	"github.com/msto63/gauss/foundation/utils/statx"
)

type statsOp struct {
	usage string
	run   func(values []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error)
}

func ignoringContext(f func([]mathx.Decimal) (mathx.Decimal, error)) func([]mathx.Decimal, mathx.Context) (mathx.Decimal, error) {
	return func(values []mathx.Decimal, _ mathx.Context) (mathx.Decimal, error) {
		return f(values)
	}
}

var statsOps = map[string]statsOp{
	"sum":       {"sum of the values", ignoringContext(statx.Sum)},
	"min":       {"smallest value", ignoringContext(statx.Min)},
	"max":       {"largest value", ignoringContext(statx.Max)},
	"range":     {"max - min", ignoringContext(statx.Range)},
	"mean":      {"arithmetic mean", statx.Mean},
	"median":    {"middle value of the sorted values", statx.Median},
	"variance":  {"population variance", statx.Variance},
	"svariance": {"sample variance", statx.SampleVariance},
	"stddev":    {"population standard deviation", statx.StandardDeviation},
	"gmean":     {"geometric mean", statx.GeometricMean},
	"hmean":     {"harmonic mean", statx.HarmonicMean},
}

var statsCmd = &cobra.Command{
	Use:   "stats [op] <value>...",
	Short: "Describe a sequence of values",
	Long: `Compute statistics of a sequence. Values are read in the session locale
or from the workspace (@name); a workspace matrix contributes all its cells.
Without an operation, or with "describe", every statistic is shown.

Operations:
  describe   all statistics
  modes      most frequent values
` + opList(statsOps, func(op statsOp) string { return op.usage }),
	Example: `  gauss stats 2 4 4 4 5 5 7 9
  gauss stats stddev @samples
  gauss -l de-DE stats median 1,5 2,5 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := "describe"
	if _, ok := statsOps[args[0]]; ok || args[0] == "describe" || args[0] == "modes" {
		name, args = args[0], args[1:]
	}
	if len(args) == 0 {
		return errors.EmptySequence(errors.ModuleStatx, name)
	}

	timer := sess.logger.StartTimer("stats").WithField("op", name)
	values, err := sess.decimals(ctx, args)
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	mctx := sess.settings.MathContext()

	var text string
	switch name {
	case "describe":
		var summary statx.Summary
		if summary, err = statx.Describe(values, mctx); err == nil {
			text, err = sess.out.Summary(summary)
		}
	case "modes":
		var modes []mathx.Decimal
		if modes, err = statx.Modes(values); err == nil {
			var parts []string
			if parts, err = slicex.MapErr(modes, sess.out.Value); err == nil {
				text = strings.Join(parts, " ")
			}
		}
	default:
		var v mathx.Decimal
		if v, err = statsOps[name].run(values, mctx); err == nil {
			text, err = sess.out.Value(v)
		}
	}
	timer.StopWithError(err)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
