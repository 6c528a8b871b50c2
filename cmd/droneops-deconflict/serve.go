package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"droneops-deconflict/internal/deconflict"
	"droneops-deconflict/internal/logging"
	"droneops-deconflict/internal/server"
)

var (
	serveAddr     string
	serveBuffer   float64
	serveParallel bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the deconfliction engine over HTTP",
	Long:  "serve exposes /check, /scenarios and /viz endpoints that accept a dataset per request.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.New(verbose)
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx = logging.NewContext(ctx, logger)

		srv := server.NewServer(serveBuffer, serveParallel)
		return srv.Start(ctx, serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().Float64Var(&serveBuffer, "buffer", deconflict.DefaultSafetyBuffer, "Default safety buffer distance")
	serveCmd.Flags().BoolVar(&serveParallel, "parallel", false, "Check schedules concurrently")
}
