package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/gauss/foundation/core/config"
	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/log"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long: `Print the settings after the configuration file, GAUSS_* environment
variables and command line flags have been applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		source := sess.cfg.FilePath()
		if source == "" {
			source = "defaults"
		}
		fmt.Fprintf(out, "# source: %s\n", source)

		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(sess.settings); err != nil {
			return err
		}
		return enc.Close()
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one raw configuration value",
	Long: `Print the value of a dotted key (for example log.level) as written in the
configuration file, or as overridden by the matching GAUSS_* variable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := sess.cfg.GetString(args[0])
		if value == "" && !sess.cfg.Has(args[0]) {
			return errors.NotFound(errors.ModuleConfig, "get", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the keys set in the configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range sess.cfg.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), key)
		}
		return nil
	},
}

var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Validate the configuration file on every change",
	Long: `Watch the configuration file and validate it whenever it changes, until
interrupted. Useful while editing locales or precision settings.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		sess.cfg.OnChange(func(_, updated *config.Config) {
			settings, err := config.FromConfig(updated)
			if err != nil {
				sess.logger.WarnWithErr("invalid configuration", err)
				fmt.Fprintln(out, sess.out.Error(err))
				return
			}
			sess.logger.Info("configuration valid",
				log.String("locale", settings.Locale),
				log.Stringer("context", settings.MathContext()))
			fmt.Fprintln(out, sess.out.Success("configuration valid: "+settings.MathContext().String()+" "+settings.Locale))
		})

		if err := sess.cfg.Watch(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, sess.out.Help("watching "+sess.cfg.FilePath()+", press Ctrl+C to stop"))
		<-ctx.Done()
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configGetCmd, configKeysCmd, configWatchCmd)
	rootCmd.AddCommand(configCmd)
}
