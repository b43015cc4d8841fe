package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ntauth/orderkey/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve key generation over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Jitter.Spread > 0 {
				// RandJitter is not goroutine safe.
				a.logger.Warn().Msg("jitter is ignored by serve")
				cfg := *a.cfg
				cfg.Jitter.Spread = 0
				gen, err := cfg.Generator(a.logger)
				if err != nil {
					return err
				}
				a.gen = gen
			}
			gin.SetMode(a.cfg.HTTP.Mode)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(a.gen, a.logger).Run(ctx, a.cfg.HTTP.Addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	return cmd
}
