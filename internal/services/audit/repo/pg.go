// Package repo provides the Postgres-backed audit store
package repo

import (
	"context"

	perr "gatehouse/internal/platform/errors"
	"gatehouse/internal/platform/store/pg"
	"gatehouse/internal/services/audit/domain"

	"github.com/google/uuid"
)

// PG persists gate decisions in the gate_decisions table
type PG struct{ db *pg.PG }

// NewPG constructs the store over an open pool
func NewPG(db *pg.PG) *PG {
	if db == nil || db.Pool == nil {
		panic("audit.PG requires an open pg pool")
	}
	return &PG{db: db}
}

// EnsureSchema creates the decisions table when it does not exist yet
func (r *PG) EnsureSchema(ctx context.Context) error {
	const q = `
		CREATE TABLE IF NOT EXISTS gate_decisions (
			id         uuid PRIMARY KEY,
			check_kind text        NOT NULL,
			actor      text        NOT NULL,
			repo       text        NOT NULL DEFAULT '',
			outcome    text        NOT NULL,
			detail     text        NOT NULL DEFAULT '',
			error_text text        NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL
		);
		CREATE INDEX IF NOT EXISTS gate_decisions_created_at_idx
			ON gate_decisions (created_at DESC)`
	if _, err := r.db.Pool.Exec(ctx, q); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "ensure gate_decisions schema failed")
	}
	return nil
}

// Insert writes one decision row
func (r *PG) Insert(ctx context.Context, d domain.Decision) error {
	const q = `
		INSERT INTO gate_decisions
			(id, check_kind, actor, repo, outcome, detail, error_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q,
		d.ID.String(), string(d.Check), d.Actor, d.Repo,
		string(d.Outcome), d.Detail, d.ErrorText, d.CreatedAt,
	)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "insert gate decision failed")
	}
	return nil
}

// Recent returns up to limit decisions, newest first
func (r *PG) Recent(ctx context.Context, limit int) ([]domain.Decision, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	const q = `
		SELECT id::text, check_kind, actor, repo, outcome, detail, error_text, created_at
		FROM gate_decisions
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.db.Pool.Query(ctx, q, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "query gate decisions failed")
	}
	defer rows.Close()

	out := make([]domain.Decision, 0, limit)
	for rows.Next() {
		var (
			d  domain.Decision
			id string
		)
		if err := rows.Scan(&id, &d.Check, &d.Actor, &d.Repo, &d.Outcome, &d.Detail, &d.ErrorText, &d.CreatedAt); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "scan gate decision failed")
		}
		d.ID, _ = uuid.Parse(id)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "iterate gate decisions failed")
	}
	return out, nil
}
