package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/memclip/internal/app"
	"github.com/MKhiriev/memclip/internal/client"
	"github.com/MKhiriev/memclip/internal/clipboard"
	"github.com/MKhiriev/memclip/internal/config"
	"github.com/MKhiriev/memclip/internal/logger"
	"github.com/MKhiriev/memclip/models"
)

type runFunc func(ctx context.Context, c client.Client) error

func newRootCmd(build models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "memclip",
		Short:         "Share one clipboard between your devices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flagsCfg := config.BindClientFlags(root.PersistentFlags())

	root.AddCommand(
		newStartCmd(flagsCfg, build),
		newJoinCmd(flagsCfg, build),
		newVersionCmd(build),
	)
	return root
}

func newStartCmd(flagsCfg *config.StructuredConfig, build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start a new clipboard session and print its ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClient(cmd, flagsCfg, build, func(ctx context.Context, c client.Client) error {
				return c.Start(ctx)
			})
		},
	}
}

func newJoinCmd(flagsCfg *config.StructuredConfig, build models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "join TICKET",
		Short: "Join the clipboard session a ticket points at",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticket, err := models.ParseTicket(args[0])
			if err != nil {
				return report(cmd, err)
			}

			return runClient(cmd, flagsCfg, build, func(ctx context.Context, c client.Client) error {
				return c.Join(ctx, ticket)
			})
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

func runClient(cmd *cobra.Command, flagsCfg *config.StructuredConfig, build models.AppBuildInfo, run runFunc) error {
	cfg, err := config.GetClientConfig(flagsCfg)
	if err != nil {
		return report(cmd, err)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return report(cmd, err)
	}

	log := logger.NewClientLogger("memclip", cfg.App.LogFile)
	log.Debug().Any("config", cfg).Msg("received configs")

	a, err := client.NewApp(cfg, build, cmd.OutOrStdout(), log)
	if err != nil {
		return report(cmd, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, a); err != nil {
		log.Error().Err(err).Str("func", "runClient").Msg("memclip stopped")
		return report(cmd, err)
	}
	return nil
}

// report prints err to stderr, prefixed with a user-facing message for the
// failures a user can act on.
func report(cmd *cobra.Command, err error) error {
	msg := err.Error()
	switch {
	case errors.Is(err, client.ErrAlreadyRunning):
		msg = app.MsgAlreadyRunning
	case errors.Is(err, clipboard.ErrNoBackend):
		msg = app.MsgNoClipboard
	case errors.Is(err, models.ErrInvalidTicket):
		msg = fmt.Sprintf("%s: %v", app.MsgInvalidTicket, err)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "memclip:", msg)
	return err
}
