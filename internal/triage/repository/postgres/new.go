package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"message-triage-assistant/internal/triage/repository"
	pkgLog "message-triage-assistant/pkg/log"
)

type implRepository struct {
	db *pgxpool.Pool
	l  pkgLog.Logger
}

// New creates a new Postgres lead repository backed by a pgx pool.
// The pool is the only shared resource across concurrent triage runs;
// it serializes acquisition internally.
func New(db *pgxpool.Pool, l pkgLog.Logger) repository.LeadRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
