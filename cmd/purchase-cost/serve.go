package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/purchase-cost/internal/config"
	"github.com/iwvelando/purchase-cost/internal/server"
	"github.com/iwvelando/purchase-cost/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveOptions holds the flags of the serve command.
type serveOptions struct {
	serverConfig string
	address      string
	maxBodySize  string
}

// loadServerConfig reads the server configuration and applies flag overrides.
func (o serveOptions) loadServerConfig(cmd *cobra.Command, a *app) (*server.Config, error) {
	cfg, err := server.LoadConfig(o.serverConfig)
	if err != nil {
		return nil, err
	}
	if o.address != "" {
		cfg.Address = o.address
	}
	if o.maxBodySize != "" {
		size, err := server.ParseSize(o.maxBodySize)
		if err != nil {
			return nil, fmt.Errorf("invalid max body size: %w", err)
		}
		cfg.SetBodySizeBytes(size)
	}
	if cmd.Flags().Changed("currency") {
		cfg.Currency = a.conf.Currency
	}
	if cmd.Flags().Changed("locale") {
		cfg.Locale = a.conf.Locale
	}
	return cfg, nil
}

func newServeCmd(a *app, version string) *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			const op = "main.serve"

			cfg, err := opts.loadServerConfig(cmd, a)
			if err != nil {
				return err
			}

			// A logging section in the server config replaces the application one.
			logger := a.logger
			if cfg.Logging != (config.LoggingConfig{}) {
				logger, err = initializeLogger(cfg.Logging, a.logLevel)
				if err != nil {
					return err
				}
				defer func() {
					_ = logger.Sync()
				}()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting server",
				zap.String("op", op),
				zap.String("version", version),
				zap.Int64("maxBodySize", cfg.BodySizeBytes()),
			)
			return server.Serve(ctx, logger, cfg, version)
		},
	}

	cmd.Flags().StringVar(&opts.serverConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&opts.address, "address", "", "listen address override")
	cmd.Flags().StringVar(&opts.maxBodySize, "max-body-size", "", "request body limit override (e.g. 512K, 1M)")
	return cmd
}
