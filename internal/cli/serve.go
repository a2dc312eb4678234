package cli

import (
	"github.com/lshigami/englishhub/config"
	"github.com/lshigami/englishhub/internal/app"
	"github.com/lshigami/englishhub/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// NewServeCmd builds the subcommand that runs the HTTP API.
func NewServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}

			fxApp := fx.New(
				fx.Supply(cfg),
				app.Module(),
				fx.Invoke(app.ServeHTTP),
			)
			if err := fxApp.Err(); err != nil {
				log.Error().Err(err).Msg("Failed to build application")
				return err
			}
			// Run blocks until SIGINT or SIGTERM, then stops the lifecycle.
			fxApp.Run()
			log.Info().Msg("Application shut down")
			return nil
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides SERVER_PORT)")
	return cmd
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
	return cfg, nil
}
