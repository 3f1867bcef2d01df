package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/handler"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/internal/server"
	"github.com/MKhiriev/memclip/internal/service"
	"github.com/MKhiriev/memclip/internal/store"
	"github.com/MKhiriev/memclip/internal/telemetry"
	"github.com/MKhiriev/memclip/internal/workers"
	"github.com/MKhiriev/memclip/models"
)

const loggerRole = "memclip-hub"

func newRootCmd(build models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:          "memclip-hub",
		Short:        "Relay server for memclip clipboard sessions",
		SilenceUsage: true,
	}
	flagsCfg := config.BindServerFlags(root.PersistentFlags())

	serve := newServeCmd(flagsCfg, build)
	root.RunE = serve.RunE
	root.Args = cobra.NoArgs

	root.AddCommand(serve, newMigrateCmd(flagsCfg), newVersionCmd(build))
	return root
}

func newServeCmd(flagsCfg *config.StructuredConfig, build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the hub (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), build.String())

			log, cfg, err := loadConfig(flagsCfg)
			if err != nil {
				return err
			}
			log.Debug().Any("config", cfg).Msg("received configs")

			provider, err := telemetry.NewProvider(true)
			if err != nil {
				log.Fatal().Err(err).Msg("error creating metrics provider")
			}
			hubMetrics, err := telemetry.NewHubMetrics(provider.MeterProvider())
			if err != nil {
				log.Fatal().Err(err).Msg("error creating hub metrics")
			}

			storages, err := store.NewStorages(cmd.Context(), cfg.Storage, log)
			if err != nil {
				log.Fatal().Err(err).Msg("error creating storages")
			}
			defer storages.Close()

			services := service.NewServices(storages, cfg, build, hubMetrics, log)

			handlers, err := handler.NewHandlers(services, cfg.Server, provider.Handler(), log)
			if err != nil {
				log.Fatal().Err(err).Msg("error creating handlers")
			}

			ws := workers.NewWorkers(
				workers.NewPeerSweeper(services.HubService, cfg.Server.PeerTTL, log.Component("presence")),
			)

			srv, err := server.NewServer(handlers, ws, cfg.Server, log)
			if err != nil {
				log.Fatal().Err(err).Msg("error creating server")
			}

			srv.RunServer()
			return nil
		},
	}
}

func newMigrateCmd(flagsCfg *config.StructuredConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, cfg, err := loadConfig(flagsCfg)
			if err != nil {
				return err
			}

			db, err := store.NewConnect(cmd.Context(), cfg.Storage.DB, log)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			if err = db.Migrate(); err != nil {
				return err
			}

			log.Info().Str("func", "migrate").Str("driver", db.Driver()).Msg("migrations applied")
			return nil
		},
	}
}

func newVersionCmd(build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), build.String())
		},
	}
}

func loadConfig(flagsCfg *config.StructuredConfig) (*logger.Logger, *config.ServerConfig, error) {
	cfg, err := config.GetServerConfig(flagsCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, nil, err
	}

	return logger.NewLogger(loggerRole), cfg, nil
}
