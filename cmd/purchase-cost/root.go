package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iwvelando/purchase-cost/internal/config"
	"github.com/iwvelando/purchase-cost/pkg/constants"
	"github.com/iwvelando/purchase-cost/pkg/format"
	"github.com/iwvelando/purchase-cost/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by all subcommands after the root command
// has loaded configuration and logging.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string
	currency     string
	locale       string

	conf   *config.Configuration
	logger *zap.Logger
}

func newRootCmd(version string) *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "purchase-cost",
		Short: "Purchase cost calculation (Bezugspreiskalkulation)",
		Long: `purchase-cost computes the cost of acquisition of goods.

The progressive direction runs from an invoice amount through trade,
special and quantity discounts, seller charges, cash discount and the
buyer's own costs down to a unit cost. The retrograde direction starts
from a target total or unit cost and reconstructs the maximum invoice
amount the buyer can accept.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file, or - to read it from stdin")
	flags.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&a.outputFormat, "output-format", "", "type of output override: pretty, json")
	flags.StringVar(&a.currency, "currency", "", "currency symbol override")
	flags.StringVar(&a.locale, "locale", "", "number formatting locale override (BCP 47, e.g. de-DE)")

	root.AddCommand(newProgressiveCmd(a), newRetrogradeCmd(a), newServeCmd(a, version))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(constants.DotEnvFile); err != nil {
		return err
	}

	// The default config file is optional; an explicitly named one is not.
	path := a.configPath
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	var (
		conf *config.Configuration
		err  error
	)
	if path == constants.StdinConfigPath {
		conf, err = config.LoadConfigurationFromReader(cmd.InOrStdin())
	} else {
		conf, err = config.LoadConfiguration(path)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if a.outputFormat != "" {
		conf.Output.Format = a.outputFormat
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		return err
	}

	if a.currency != "" {
		conf.Currency = a.currency
	}
	if a.locale != "" {
		conf.Locale = a.locale
	}

	a.conf = conf
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("op", "main.setup"),
		zap.String("config", path),
		zap.String("outputFormat", conf.Output.Format),
		zap.String("currency", conf.Currency),
		zap.String("locale", conf.Locale),
	)
	return nil
}

func (a *app) formatter() format.Formatter {
	return format.NewFormatter(a.conf.Currency, a.conf.Locale)
}

func (a *app) warn(op string, warnings []string) {
	for _, warning := range warnings {
		a.logger.Warn("input warning: "+warning,
			zap.String("op", op),
		)
	}
}
