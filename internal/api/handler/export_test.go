package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/printsmith-digest/internal/domain"
	"github.com/vfg2006/printsmith-digest/internal/scheduler"
	"github.com/vfg2006/printsmith-digest/internal/usecases/digesting"
	"github.com/vfg2006/printsmith-digest/internal/usecases/digesting/mocks"
	"github.com/vfg2006/printsmith-digest/internal/usecases/monitoring"
	"github.com/vfg2006/printsmith-digest/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type stubScheduler struct {
	triggerErr error
	triggered  int
}

func (s *stubScheduler) TriggerManualSync() error {
	s.triggered++
	return s.triggerErr
}

func (s *stubScheduler) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true, "last_export_id": "exp-1"}
}

type stubMonitor struct {
	summary *monitoring.Summary
	err     error
	days    int
}

func (s *stubMonitor) LastExports(_ context.Context, days int) (*monitoring.Summary, error) {
	s.days = days
	return s.summary, s.err
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRunExport(t *testing.T) {
	tests := []struct {
		name           string
		triggerErr     error
		expectedStatus int
		expectedCode   string
	}{
		{name: "Exportação manual aceita", expectedStatus: http.StatusAccepted},
		{name: "Exportação já em andamento", triggerErr: scheduler.ErrExportRunning, expectedStatus: http.StatusConflict, expectedCode: apiErrors.ErrExportRunning},
		{name: "Erro inesperado", triggerErr: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedCode: apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := &stubScheduler{triggerErr: tt.triggerErr}
			rec := httptest.NewRecorder()

			RunExport(ExportServices{Scheduler: sched})(rec, httptest.NewRequest(http.MethodPost, "/v1/export/run", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, 1, sched.triggered)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decode[apiErrors.APIError](t, rec).Code)
				return
			}
			assert.Equal(t, "manual", decode[map[string]any](t, rec)["source"])
		})
	}
}

func TestGetExportStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	GetExportStatus(ExportServices{Scheduler: &stubScheduler{}})(rec, httptest.NewRequest(http.MethodGet, "/v1/export/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, true, body["sync_enabled"])
	assert.Equal(t, "exp-1", body["last_export_id"])
}

func TestPreviewExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		query    string
		setup    func(exporter *mocks.MockExporter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:  "Prévia com data informada",
			query: "?date=2026-03-04",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, opts digesting.RunOptions) (*domain.DigestPayload, error) {
						assert.True(t, opts.DryRun)
						assert.Equal(t, domain.ExportSourcePreview, opts.Source)
						assert.Equal(t, "2026-03-04", opts.Now.Format(time.DateOnly))
						return &domain.DigestPayload{ExportID: "prev-1", ExportSource: domain.ExportSourcePreview}, nil
					})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				body := decode[map[string]any](t, rec)
				assert.Equal(t, "prev-1", body["exportId"])
				assert.Equal(t, "preview", body["exportSource"])
			},
		},
		{
			name:  "Data em formato inválido",
			query: "?date=04/03/2026",
			setup: func(exporter *mocks.MockExporter) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidFormat, decode[apiErrors.APIError](t, rec).Code)
			},
		},
		{
			name: "Falha nas consultas ao PrintSmith",
			setup: func(exporter *mocks.MockExporter) {
				exporter.EXPECT().
					Run(gomock.Any(), gomock.Any()).
					Return(nil, digesting.ErrDataSource)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadGateway, rec.Code)
				assert.Equal(t, apiErrors.ErrExportDataSource, decode[apiErrors.APIError](t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter := mocks.NewMockExporter(ctrl)
			tt.setup(exporter)
			rec := httptest.NewRecorder()

			PreviewExport(ExportServices{Exporter: exporter})(rec, httptest.NewRequest(http.MethodGet, "/v1/export/preview"+tt.query, nil))

			tt.validate(t, rec)
		})
	}
}

func TestGetRecentExports(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		monitor        *stubMonitor
		expectedStatus int
		expectedDays   int
	}{
		{
			name:           "Usa sete dias por padrão",
			monitor:        &stubMonitor{summary: &monitoring.Summary{Days: 7}},
			expectedStatus: http.StatusOK,
			expectedDays:   7,
		},
		{
			name:           "Dias informados",
			query:          "?days=3",
			monitor:        &stubMonitor{summary: &monitoring.Summary{Days: 3, Count: 1}},
			expectedStatus: http.StatusOK,
			expectedDays:   3,
		},
		{
			name:           "Dias inválidos",
			query:          "?days=-1",
			monitor:        &stubMonitor{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Erro na API do Render",
			monitor:        &stubMonitor{err: errors.New("timeout")},
			expectedStatus: http.StatusBadGateway,
			expectedDays:   7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			GetRecentExports(ExportServices{Monitor: tt.monitor})(rec, httptest.NewRequest(http.MethodGet, "/v1/export/recent"+tt.query, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedDays, tt.monitor.days)
		})
	}
}

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()

	HealthcheckHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
}
