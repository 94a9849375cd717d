package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/internal/scheduler"
	"github.com/vfg2006/printsmith-digest/internal/usecases/digesting"
	"github.com/vfg2006/printsmith-digest/internal/usecases/monitoring"
	"github.com/vfg2006/printsmith-digest/pkg/apiErrors"
	"github.com/vfg2006/printsmith-digest/pkg/log"
	"github.com/vfg2006/printsmith-digest/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ExportScheduler interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

type RecentExportsLister interface {
	LastExports(ctx context.Context, days int) (*monitoring.Summary, error)
}

// ExportServices reúne as dependências das rotas de exportação
type ExportServices struct {
	Scheduler ExportScheduler
	Exporter  digesting.Exporter
	Monitor   RecentExportsLister
	Location  *time.Location
}

// GetExportStatus retorna o status do agendador de exportação
func GetExportStatus(services ExportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, services.Scheduler.GetStatus())
	}
}

// RunExport dispara uma exportação manual em segundo plano
func RunExport(services ExportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := services.Scheduler.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrExportRunning) {
				apiErrors.WriteError(w, apiErrors.ErrExportRunning, "Já existe uma exportação em andamento", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar a exportação", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Exportação iniciada com sucesso",
			"source":  domain.ExportSourceManual,
		})
	}
}

// PreviewExport monta o digest sem consultar o histórico e sem enviar
func PreviewExport(services ExportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		location := services.Location
		if location == nil {
			location = time.UTC
		}

		date, err := utils.ParseDate(r.URL.Query().Get("date"), location)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}
		if date != nil {
			now = *date
		}

		payload, err := services.Exporter.Run(r.Context(), digesting.RunOptions{
			Now:    now,
			DryRun: true,
			Source: domain.ExportSourcePreview,
		})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gerar a prévia do digest")
			if errors.Is(err, digesting.ErrDataSource) {
				apiErrors.WriteError(w, apiErrors.ErrExportDataSource, "Erro ao consultar o PrintSmith", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar a prévia do digest", nil)
			return
		}

		writeJSON(w, http.StatusOK, payload)
	}
}

// GetRecentExports lista os digests recebidos pela API do Render
func GetRecentExports(services ExportServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := monitoring.DefaultDays
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro days deve ser um inteiro positivo", nil)
				return
			}
			days = parsed
		}

		summary, err := services.Monitor.LastExports(r.Context(), days)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao consultar exportações recentes")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar a API do Render", nil)
			return
		}

		writeJSON(w, http.StatusOK, summary)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("Erro ao enviar resposta")
	}
}
