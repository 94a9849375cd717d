// Package scheduler contém o agendamento da exportação diária do digest
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/printsmith-digest/internal/config"
	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/internal/usecases/digesting"
	"github.com/vfg2006/printsmith-digest/pkg/log"
)

// ErrExportRunning indica que já existe uma exportação em andamento
var ErrExportRunning = errors.New("exportação já está em execução")

type DigestExportConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type DigestExportService struct {
	scheduler           *gocron.Scheduler
	exporter            digesting.Exporter
	config              DigestExportConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
	lastExportID        string
	lastSource          domain.ExportSource
	now                 func() time.Time
}

func NewDigestExportService(exporter digesting.Exporter, cfg *config.Config, location *time.Location) *DigestExportService {
	exportConfig := DigestExportConfig{
		CronSchedule: cfg.ExportSchedule.CronSchedule, // Default: 6h da manhã todos os dias
		SyncEnabled:  cfg.ExportSchedule.Enabled,      // Default: desabilitado
	}

	if location == nil {
		location = time.UTC
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": exportConfig.CronSchedule,
		"timezone":      location.String(),
	}).Info("Configuração do agendador de exportação do digest carregada")

	return &DigestExportService{
		scheduler: gocron.NewScheduler(location),
		exporter:  exporter,
		config:    exportConfig,
		now:       time.Now,
	}
}

func (s *DigestExportService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de exportação do digest desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de exportação do digest")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunExport(ctx, domain.ExportSourceScheduled); err != nil {
			logrus.WithError(err).Error("Erro na exportação agendada do digest")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar exportação do digest: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de exportação do digest")
		s.scheduler.Stop()
	}()

	return nil
}

// RunExport executa uma exportação completa, recusando execuções simultâneas
func (s *DigestExportService) RunExport(ctx context.Context, source domain.ExportSource) error {
	if !s.begin() {
		logrus.WithField("source", source).Warn("Exportação do digest já está em execução")
		return ErrExportRunning
	}

	ctx, _ = log.WithRunID(ctx)
	logger := log.ForContext(ctx).WithField("source", source)
	logger.Info("Iniciando exportação do digest")

	payload, err := s.exporter.Run(ctx, digesting.RunOptions{
		Now:    s.now(),
		Source: source,
	})

	s.finish(source, payload, err)

	if err != nil {
		logger.WithError(err).Error("Exportação do digest falhou")
		return err
	}

	logger.WithField("export_id", payload.ExportID).Info("Exportação do digest concluída")
	return nil
}

// TriggerManualSync inicia manualmente uma exportação em segundo plano
func (s *DigestExportService) TriggerManualSync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Exportação do digest já em andamento, ignorando solicitação manual")
		return ErrExportRunning
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando exportação manual do digest")
	go func() {
		if err := s.RunExport(context.Background(), domain.ExportSourceManual); err != nil && !errors.Is(err, ErrExportRunning) {
			logrus.WithError(err).Error("Erro na exportação manual do digest")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DigestExportService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_source":            s.lastSource,
		"last_error":             s.lastError,
		"last_export_id":         s.lastExportID,
	}
}

func (s *DigestExportService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *DigestExportService) finish(source domain.ExportSource, payload *domain.DigestPayload, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSource = source
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	// falhas de entrega ainda devolvem o payload montado
	if payload != nil {
		s.lastExportID = payload.ExportID
	}
}
