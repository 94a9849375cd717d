package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/printsmith-digest/internal/api"
	"github.com/vfg2006/printsmith-digest/internal/api/handler"
	"github.com/vfg2006/printsmith-digest/internal/scheduler"
	"github.com/vfg2006/printsmith-digest/internal/usecases/authenticating"
	"github.com/vfg2006/printsmith-digest/internal/usecases/monitoring"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o agendador de exportação e a API de operação",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(false); err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		stack, err := newExportStack(ctx, cfg)
		if err != nil {
			return err
		}
		defer stack.Close()

		exportService := scheduler.NewDigestExportService(stack.exporter, cfg, stack.location)
		if err := exportService.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação do digest")
			return err
		}

		server, err := api.New(cfg, authenticating.NewService(cfg.Auth), handler.ExportServices{
			Scheduler: exportService,
			Exporter:  stack.exporter,
			Monitor:   monitoring.NewService(stack.render, stack.location),
			Location:  stack.location,
		})
		if err != nil {
			return err
		}

		return server.Run(ctx)
	},
}
