package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/liquidkit/pkg/clientip"
	"github.com/dmitrymomot/liquidkit/pkg/config"
	"github.com/dmitrymomot/liquidkit/pkg/httpserver"
	"github.com/dmitrymomot/liquidkit/pkg/logger"
	"github.com/dmitrymomot/liquidkit/pkg/requestid"
	"github.com/dmitrymomot/liquidkit/svc/render"
)

type serveConfig struct {
	Logger logger.Config
	HTTP   httpserver.Config
	Render render.Config
}

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the filter preview HTTP API",
		Long: `Serve starts the HTTP API used by theme editors to preview filter output.
Settings come from the environment (and an optional .env file): HTTP_ADDR,
RENDER_PRESETS_FILE, RENDER_MAX_BODY_BYTES, APP_ENV, LOG_LEVEL, LOG_FORMAT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg serveConfig
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			log := logger.NewFromConfig(cfg.Logger,
				logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
			)
			logger.SetAsDefault(log)

			svc, err := render.NewService(cfg.Render, render.WithLogger(log))
			if err != nil {
				return fmt.Errorf("render service: %w", err)
			}

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(cmd.Context(), render.Router(svc, cfg.Render, log))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}
