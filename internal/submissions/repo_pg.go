package submissions

import (
	"context"
	"database/sql"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts sub and returns the BIGSERIAL id.
func (r *PGRepo) Create(ctx context.Context, sub Submission) (int64, error) {
	if r == nil || r.DB == nil {
		return 0, ErrNotConfigured
	}
	query := `INSERT INTO solicitacoes(` + insertColumns + `) VALUES (` + placeholders(19, true) + `) RETURNING id`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, insertArgs(sub)...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}
	return id, nil
}

// List returns all submissions, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Summary, error) {
	if r == nil || r.DB == nil {
		return nil, ErrNotConfigured
	}
	return listSummaries(ctx, r.DB)
}

// GetByID returns the full row for id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Submission, error) {
	if r == nil || r.DB == nil {
		return Submission{}, ErrNotConfigured
	}
	row := r.DB.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM solicitacoes WHERE id = $1`, id)
	return getSubmission(row)
}

var _ Repo = (*PGRepo)(nil)
