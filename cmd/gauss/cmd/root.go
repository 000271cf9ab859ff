package cmd

import (
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/gauss/foundation/core/config"
	gerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/core/i18n"
	"github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/internal/render"
	"github.com/msto63/gauss/internal/workspace"
)

var (
	cfgFile   string
	localeTag string
	precision uint32
	verbose   bool
	plain     bool
)

var rootCmd = &cobra.Command{
	Use:   "gauss",
	Short: "Exact decimal arithmetic and matrices in any number format",
	Long: `gauss computes with exact decimals and decimal matrices and reads and
writes numbers in the conventions of many locales.

Numbers are entered in the configured locale (--locale), e.g. 1.234,56 for
de-DE. Matrices use ';' between rows and ',' between cells, or '|' between
cells in locales whose decimal separator is a comma.

Operands written as @name are read from the workspace.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// session holds what every command needs after flags and configuration
// are resolved
type session struct {
	settings   config.Settings
	cfg        *config.Config
	logger     *log.Logger
	registry   *i18n.Registry
	out        *render.Renderer
	invocation string
	store      *workspace.Store
}

var sess *session

// Execute runs the root command. Errors are reported on stderr before
// they are returned.
func Execute() error {
	err := rootCmd.Execute()
	if sess != nil {
		sess.close()
		sess = nil
	}
	if err != nil {
		r := render.New(rootCmd.ErrOrStderr())
		rootCmd.PrintErrln(r.Error(err))
	}
	return err
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ge *gerror.Error
	if stderrors.As(err, &ge) {
		return ge.Code().ExitCode()
	}
	// flag and argument errors from cobra
	return 2
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./gauss.{toml,yaml} or the user config dir)")
	rootCmd.PersistentFlags().StringVarP(&localeTag, "locale", "l", "", "locale of input and output numbers, e.g. de-DE")
	rootCmd.PersistentFlags().Uint32VarP(&precision, "precision", "p", 0, "significant digits of inexact results")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "plain output without boxes and colors")
}

func setup(cmd *cobra.Command, args []string) error {
	settings, cfg, err := config.LoadSettings(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("locale") {
		settings.Locale = localeTag
	}
	if cmd.Flags().Changed("precision") {
		settings.Precision = precision
	}
	if verbose {
		settings.Log.Level = log.LevelDebug.String()
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	invocation := uuid.NewString()
	logger := log.NewWithConfig(settings.LoggerConfig(cmd.ErrOrStderr())).
		WithField("invocation", invocation)
	log.SetDefault(logger)

	reg := i18n.Default()
	if settings.LocalesDir != "" {
		if reg, err = reg.LoadDir(settings.LocalesDir); err != nil {
			return err
		}
	}
	loc, err := reg.Lookup(settings.Locale)
	if err != nil {
		return err
	}
	settings.Locale = loc.Tag

	sess = &session{
		settings:   settings,
		cfg:        cfg,
		logger:     logger,
		registry:   reg,
		invocation: invocation,
		out: render.New(cmd.OutOrStdout(),
			render.WithLocale(settings.Locale),
			render.WithRegistry(reg),
			render.WithPlain(plain)),
	}
	logger.Debug("session ready",
		log.String("command", cmd.CommandPath()),
		log.String("locale", settings.Locale),
		log.Stringer("context", settings.MathContext()))
	return nil
}

// workspace opens the store on first use
func (s *session) workspace() (*workspace.Store, error) {
	if s.store != nil {
		return s.store, nil
	}
	store, err := workspace.Open(workspace.Config{Path: s.settings.Workspace.Path}, s.logger.WithName("workspace"))
	if err != nil {
		return nil, err
	}
	s.store = store
	return store, nil
}

func (s *session) close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.WarnWithErr("closing workspace failed", err)
		}
		s.store = nil
	}
}
