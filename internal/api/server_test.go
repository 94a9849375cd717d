package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/printsmith-digest/internal/api/handler"
	"github.com/vfg2006/printsmith-digest/internal/config"
	"github.com/vfg2006/printsmith-digest/internal/usecases/authenticating"
	"github.com/vfg2006/printsmith-digest/internal/usecases/digesting/mocks"
	"github.com/vfg2006/printsmith-digest/internal/usecases/monitoring"
	"go.uber.org/mock/gomock"
)

type fakeScheduler struct{}

func (fakeScheduler) TriggerManualSync() error { return nil }

func (fakeScheduler) GetStatus() map[string]any { return map[string]any{"sync_enabled": false} }

type fakeMonitor struct{}

func (fakeMonitor) LastExports(context.Context, int) (*monitoring.Summary, error) {
	return &monitoring.Summary{}, nil
}

func TestServerRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0"}}
	auth := authenticating.NewService(config.Auth{Secret: "segredo"})
	token, err := auth.GenerateToken("ops")
	require.NoError(t, err)

	srv, err := New(cfg, auth, handler.ExportServices{
		Scheduler: fakeScheduler{},
		Exporter:  mocks.NewMockExporter(ctrl),
		Monitor:   fakeMonitor{},
	})
	require.NoError(t, err)

	tests := []struct {
		name           string
		method         string
		path           string
		token          string
		expectedStatus int
	}{
		{name: "Healthcheck sem token", method: http.MethodGet, path: "/healthcheck", expectedStatus: http.StatusOK},
		{name: "Status exige token", method: http.MethodGet, path: "/v1/export/status", expectedStatus: http.StatusUnauthorized},
		{name: "Status com token", method: http.MethodGet, path: "/v1/export/status", token: token, expectedStatus: http.StatusOK},
		{name: "Disparo manual com token", method: http.MethodPost, path: "/v1/export/run", token: token, expectedStatus: http.StatusAccepted},
		{name: "Recentes com token", method: http.MethodGet, path: "/v1/export/recent", token: token, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestNewExigeServicos(t *testing.T) {
	_, err := New(&config.Config{}, authenticating.NewService(config.Auth{}), handler.ExportServices{})
	assert.Error(t, err)
}
