package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/gauss/internal/workspace"
)

var (
	wsMatrix bool
	wsKind   string
)

var wsCmd = &cobra.Command{
	Use:   "ws",
	Short: "Manage named values and matrices",
	Long: `The workspace keeps named values and matrices between invocations. Names
can be used as operands of calc, matrix and stats by writing @name.`,
}

var wsSaveCmd = &cobra.Command{
	Use:   "save <name> <value|matrix>",
	Short: "Store a value or matrix",
	Example: `  gauss ws save rate 0.19
  gauss ws save a "1,2;3,4" --matrix`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		var entry workspace.Entry
		if wsMatrix {
			m, err := sess.matrix(ctx, args[1])
			if err != nil {
				return err
			}
			entry = workspace.MatrixEntry(args[0], m)
		} else {
			d, err := sess.decimal(ctx, args[1])
			if err != nil {
				return err
			}
			entry = workspace.ValueEntry(args[0], d.WithLocale(sess.settings.Locale))
		}
		if err := sess.save(ctx, entry); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sess.out.Success("saved "+args[0]))
		return nil
	},
}

var wsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a stored value or matrix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := sess.entry(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var text string
		switch e.Kind {
		case workspace.KindMatrix:
			m, err := e.Matrix(sess.matrixOptions()...)
			if err != nil {
				return err
			}
			text, err = sess.out.Matrix(m)
			if err != nil {
				return err
			}
		default:
			d, err := e.Value()
			if err != nil {
				return err
			}
			if text, err = sess.out.Value(d); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}

var wsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List stored entries",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := workspace.ParseKind(wsKind)
		if err != nil {
			return err
		}
		store, err := sess.workspace()
		if err != nil {
			return err
		}
		entries, err := store.List(cmd.Context(), kind)
		if err != nil {
			return err
		}
		if out := sess.out.Entries(entries); out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

var wsRmCmd = &cobra.Command{
	Use:     "rm <name>...",
	Aliases: []string{"delete"},
	Short:   "Remove stored entries",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := sess.workspace()
		if err != nil {
			return err
		}
		for _, name := range args {
			if err := store.Delete(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sess.out.Success("removed "+name))
		}
		return nil
	},
}

func init() {
	wsSaveCmd.Flags().BoolVarP(&wsMatrix, "matrix", "m", false, "store a matrix")
	wsListCmd.Flags().StringVar(&wsKind, "kind", "", "only list entries of this kind (value or matrix)")

	wsCmd.AddCommand(wsSaveCmd, wsGetCmd, wsListCmd, wsRmCmd)
	rootCmd.AddCommand(wsCmd)
}
