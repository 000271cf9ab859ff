package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List the known number formats",
	Long: `List every locale of the registry with its separators, in detection
order. Additional locales are loaded from locales_dir.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), sess.out.Locales(sess.registry.Locales()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(localesCmd)
}
