package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/internal/usecases/digesting"
	"github.com/vfg2006/printsmith-digest/pkg/utils"
)

var (
	runDryRun bool
	runDate   string
	runSource string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Executa uma exportação do digest",
	Long: "Executa uma exportação do digest. Com --dry-run o payload é impresso em stdout " +
		"sem consultar o histórico e sem enviar para a API do Render.",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := parseSource(runSource)
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(runDryRun); err != nil {
			return err
		}

		ctx := cmd.Context()
		stack, err := newExportStack(ctx, cfg)
		if err != nil {
			return err
		}
		defer stack.Close()

		now := time.Now()
		date, err := utils.ParseDate(runDate, stack.location)
		if err != nil {
			return fmt.Errorf("data inválida %q, use o formato YYYY-MM-DD: %w", runDate, err)
		}
		if date != nil {
			now = *date
		}

		payload, err := stack.exporter.Run(ctx, digesting.RunOptions{
			Now:    now,
			DryRun: runDryRun,
			Source: source,
		})
		if err != nil {
			return err
		}

		if runDryRun {
			out, err := utils.PrettyJson(payload)
			if err != nil {
				return fmt.Errorf("erro ao serializar o digest: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}

		return nil
	},
}

func parseSource(value string) (domain.ExportSource, error) {
	switch source := domain.ExportSource(value); source {
	case domain.ExportSourceManual, domain.ExportSourceScheduled:
		return source, nil
	default:
		return "", fmt.Errorf("origem inválida %q, use manual ou scheduled", value)
	}
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Imprime o payload sem enviar")
	runCmd.Flags().StringVar(&runDate, "date", "", "Data de execução no formato YYYY-MM-DD (padrão: hoje)")
	runCmd.Flags().StringVar(&runSource, "source", string(domain.ExportSourceManual), "Origem registrada no digest: manual ou scheduled")
}
