package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/printsmith-digest/infrastructure/database/postgres"
	"github.com/vfg2006/printsmith-digest/infrastructure/integrator/render"
	"github.com/vfg2006/printsmith-digest/infrastructure/repository"
	"github.com/vfg2006/printsmith-digest/internal/config"
	"github.com/vfg2006/printsmith-digest/internal/usecases/digesting"
)

// loadConfig carrega a configuração e aplica o nível de log
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	return cfg, nil
}

// exportStack reúne as dependências de uma exportação
type exportStack struct {
	conn     *postgres.Connection
	render   render.Client
	location *time.Location
	exporter *digesting.Service
}

func (s *exportStack) Close() {
	if s.conn != nil {
		_ = s.conn.Close()
	}
}

func newExportStack(ctx context.Context, cfg *config.Config) (*exportStack, error) {
	policy, err := digesting.NewPolicy(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := postgres.NewConnection(ctx, cfg.PrintSmith)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PrintSmith: %w", err)
	}
	logrus.Info("Conexão com o PrintSmith estabelecida com sucesso")

	renderClient := render.NewClient(cfg.Render)
	repo := repository.NewPrintSmithRepository(conn)

	return &exportStack{
		conn:     conn,
		render:   renderClient,
		location: policy.Location,
		exporter: digesting.NewService(policy, repo, renderClient, renderClient, cfg.Render.HistoryTimeout),
	}, nil
}
