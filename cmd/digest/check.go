package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/printsmith-digest/infrastructure/integrator/render"
	"github.com/vfg2006/printsmith-digest/internal/usecases/monitoring"
)

const receivedLayout = "2006-01-02 03:04:05 PM MST"

var checkDays int

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Mostra as últimas exportações recebidas pela API do Render",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Render.RecentURL == "" || cfg.Render.ExportSecret == "" {
			return errors.New("RENDER_API_URL ou EXPORT_API_SECRET não configurados")
		}

		location, err := cfg.Location()
		if err != nil {
			return err
		}

		monitor := monitoring.NewService(render.NewClient(cfg.Render), location)
		summary, err := monitor.LastExports(cmd.Context(), checkDays)
		if err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), summary)
		return nil
	},
}

func printSummary(w io.Writer, summary *monitoring.Summary) {
	if summary.Count == 0 {
		fmt.Fprintf(w, "Nenhuma exportação nos últimos %d dias\n", summary.Days)
		return
	}

	fmt.Fprintf(w, "%d exportação(ões) nos últimos %d dias:\n\n", summary.Count, summary.Days)
	for _, export := range summary.Exports {
		fmt.Fprintf(w, "Data do digest: %s\n", export.Date)
		fmt.Fprintf(w, "  Origem: %s\n", describeSource(export))
		switch {
		case export.ReceivedAt != nil:
			fmt.Fprintf(w, "  Recebido: %s (%s)\n", export.ReceivedAt.Format(receivedLayout), export.Age)
		case export.RawReceivedAt != "":
			fmt.Fprintf(w, "  Recebido: %s\n", export.RawReceivedAt)
		}
		if len(export.FeaturedAccounts) > 0 {
			fmt.Fprintf(w, "  Contas em destaque: %s\n", strings.Join(export.FeaturedAccounts, ", "))
		}
		fmt.Fprintln(w)
	}

	latest := summary.Latest
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "ÚLTIMA EXPORTAÇÃO")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Data do digest: %s\n", latest.Date)
	fmt.Fprintf(w, "Origem: %s\n", strings.ToUpper(latest.Source))
	if latest.ReceivedAt != nil {
		fmt.Fprintf(w, "Recebido em: %s\n", latest.ReceivedAt.Format(receivedLayout))
	}

	if summary.LatestWasScheduled() {
		fmt.Fprintln(w, "\nVeio do agendamento. A próxima deve chegar por volta do mesmo horário.")
	} else {
		fmt.Fprintln(w, "\nFoi uma exportação MANUAL. Amanhã confira se a agendada aparece.")
	}
}

func describeSource(export monitoring.ExportRecord) string {
	switch export.Source {
	case "scheduled":
		return "agendada (automática)"
	case "manual":
		return "manual"
	default:
		return export.Source
	}
}

func init() {
	checkCmd.Flags().IntVar(&checkDays, "days", monitoring.DefaultDays, "Quantidade de dias consultados")
}
