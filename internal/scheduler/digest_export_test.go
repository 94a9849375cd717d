package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/printsmith-digest/internal/config"
	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/internal/usecases/digesting"
	"github.com/vfg2006/printsmith-digest/internal/usecases/digesting/mocks"
	"github.com/vfg2006/printsmith-digest/pkg/log"
	"go.uber.org/mock/gomock"
)

func newTestService(exporter digesting.Exporter) *DigestExportService {
	cfg := &config.Config{
		ExportSchedule: config.ExportSchedule{CronSchedule: "0 6 * * *", Enabled: true},
	}

	svc := NewDigestExportService(exporter, cfg, time.UTC)
	svc.now = func() time.Time { return time.Date(2026, 3, 4, 6, 0, 0, 0, time.UTC) }
	return svc
}

func TestDigestExportService_RunExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		source   domain.ExportSource
		setup    func(exporter *mocks.MockExporter)
		validate func(t *testing.T, err error, status map[string]any)
	}{
		{
			name:   "Exportação agendada com sucesso",
			source: domain.ExportSourceScheduled,
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, opts digesting.RunOptions) (*domain.DigestPayload, error) {
						assert.NotEmpty(t, log.GetRunID(ctx))
						assert.Equal(t, domain.ExportSourceScheduled, opts.Source)
						assert.False(t, opts.DryRun)
						return &domain.DigestPayload{ExportID: "exp-1"}, nil
					})
			},
			validate: func(t *testing.T, err error, status map[string]any) {
				require.NoError(t, err)
				assert.Equal(t, "exp-1", status["last_export_id"])
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["sync_running"])
				assert.Equal(t, domain.ExportSourceScheduled, status["last_source"])
			},
		},
		{
			name:   "Falha na entrega registra erro e identificador",
			source: domain.ExportSourceManual,
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					Return(&domain.DigestPayload{ExportID: "exp-2"}, digesting.ErrDelivery)
			},
			validate: func(t *testing.T, err error, status map[string]any) {
				require.ErrorIs(t, err, digesting.ErrDelivery)
				assert.Equal(t, "exp-2", status["last_export_id"])
				assert.Equal(t, digesting.ErrDelivery.Error(), status["last_error"])
			},
		},
		{
			name:   "Falha nas consultas não gera payload",
			source: domain.ExportSourceScheduled,
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					Return(nil, digesting.ErrDataSource)
			},
			validate: func(t *testing.T, err error, status map[string]any) {
				require.ErrorIs(t, err, digesting.ErrDataSource)
				assert.Equal(t, "", status["last_export_id"])
				assert.Equal(t, digesting.ErrDataSource.Error(), status["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := mocks.NewMockExporter(ctrl)
			tt.setup(exporter)

			svc := newTestService(exporter)
			err := svc.RunExport(context.Background(), tt.source)

			tt.validate(t, err, svc.GetStatus())
		})
	}
}

func TestDigestExportService_RecusaExecucaoSimultanea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exporter := mocks.NewMockExporter(ctrl)
	svc := newTestService(exporter)
	svc.syncRunning = true

	err := svc.RunExport(context.Background(), domain.ExportSourceScheduled)
	assert.ErrorIs(t, err, ErrExportRunning)

	err = svc.TriggerManualSync()
	assert.ErrorIs(t, err, ErrExportRunning)
}

func TestDigestExportService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	done := make(chan struct{})
	exporter := mocks.NewMockExporter(ctrl)
	exporter.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts digesting.RunOptions) (*domain.DigestPayload, error) {
			defer close(done)
			assert.Equal(t, domain.ExportSourceManual, opts.Source)
			return nil, errors.New("falha qualquer")
		})

	svc := newTestService(exporter)
	require.NoError(t, svc.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("exportação manual não foi executada")
	}

	assert.Eventually(t, func() bool {
		return svc.GetStatus()["last_error"] == "falha qualquer"
	}, time.Second, 10*time.Millisecond)
}

func TestDigestExportService_StartDesabilitado(t *testing.T) {
	cfg := &config.Config{ExportSchedule: config.ExportSchedule{CronSchedule: "0 6 * * *"}}
	svc := NewDigestExportService(nil, cfg, nil)

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, false, svc.GetStatus()["sync_enabled"])
}

func TestDigestExportService_StartCronInvalida(t *testing.T) {
	cfg := &config.Config{ExportSchedule: config.ExportSchedule{CronSchedule: "todo dia", Enabled: true}}
	svc := NewDigestExportService(nil, cfg, time.UTC)

	err := svc.Start(context.Background())
	assert.Error(t, err)
}
