package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/printsmith-digest/internal/config"
)

// connMaxIdle fecha a conexão ociosa entre execuções agendadas
const connMaxIdle = 5 * time.Minute

// Connection é a conexão somente leitura com o banco do PrintSmith
type Connection struct {
	*sql.DB
}

func NewConnection(ctx context.Context, cfg config.PrintSmith) (*Connection, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres: DSN do PrintSmith não configurado")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "postgres: DSN inválido")
	}

	// Uma exportação por vez, consultas sequenciais
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(connMaxIdle)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "postgres: falha ao conectar em %s", cfg.Host)
	}

	return &Connection{DB: db}, nil
}
