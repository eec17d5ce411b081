package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/operacoes-server/internal/config"
	"github.com/carson-networks/operacoes-server/internal/storage/operacao"
)

const pingTimeout = 10 * time.Second

type Storage struct {
	DB        *sql.DB
	Operacoes operacao.IOperacaoTable
}

// NewStorage opens the connection pool shared by every request and checks
// that the database is reachable.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return NewStorageWithDB(db), nil
}

func NewStorageWithDB(db *sql.DB) *Storage {
	return &Storage{
		DB:        db,
		Operacoes: operacao.NewReader(bob.NewDB(db)),
	}
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
