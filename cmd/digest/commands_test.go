package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/internal/usecases/monitoring"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected domain.ExportSource
		hasError bool
	}{
		{name: "Manual", value: "manual", expected: domain.ExportSourceManual},
		{name: "Agendada", value: "scheduled", expected: domain.ExportSourceScheduled},
		{name: "Prévia não é aceita", value: "preview", hasError: true},
		{name: "Valor desconhecido", value: "cron", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, err := parseSource(tt.value)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, source)
		})
	}
}

func TestPrintSummary(t *testing.T) {
	received := time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		summary  *monitoring.Summary
		contains []string
	}{
		{
			name:     "Sem exportações",
			summary:  &monitoring.Summary{Days: 7},
			contains: []string{"Nenhuma exportação nos últimos 7 dias"},
		},
		{
			name: "Última exportação manual",
			summary: func() *monitoring.Summary {
				exports := []monitoring.ExportRecord{{
					Date:             "2026-03-03",
					Source:           "manual",
					ReceivedAt:       &received,
					Age:              "2 hours ago",
					FeaturedAccounts: []string{"Acme", "Globex"},
				}}
				return &monitoring.Summary{Days: 7, Count: 1, Exports: exports, Latest: &exports[0]}
			}(),
			contains: []string{
				"1 exportação(ões) nos últimos 7 dias",
				"Recebido: 2026-03-04 06:00:00 AM UTC (2 hours ago)",
				"Contas em destaque: Acme, Globex",
				"Origem: MANUAL",
				"exportação MANUAL",
			},
		},
		{
			name: "Última exportação agendada",
			summary: func() *monitoring.Summary {
				exports := []monitoring.ExportRecord{{Date: "2026-03-03", Source: "scheduled", Scheduled: true}}
				return &monitoring.Summary{Days: 3, Count: 1, Exports: exports, Latest: &exports[0]}
			}(),
			contains: []string{"agendada (automática)", "Veio do agendamento"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			printSummary(&out, tt.summary)

			for _, expected := range tt.contains {
				assert.Contains(t, out.String(), expected)
			}
		})
	}
}
