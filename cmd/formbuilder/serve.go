package main

import (
	"context"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/server"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation, validation and project API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.profile()
			if err != nil {
				return err
			}
			logger := p.Logger(cmd.ErrOrStderr())
			s := server.New(p, nil, logger)

			// Trigger graceful shutdown on SIGINT or SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), terminationSignals...)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- s.Start(ctx)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := s.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return <-errCh
		},
	}
}
