package submissions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteRepo implements Repo on an embedded SQLite database.
type SQLiteRepo struct {
	DB *sql.DB
}

// Create inserts sub and returns the id assigned by AUTOINCREMENT.
func (r *SQLiteRepo) Create(ctx context.Context, sub Submission) (int64, error) {
	if r == nil || r.DB == nil {
		return 0, ErrNotConfigured
	}
	query := `INSERT INTO solicitacoes(` + insertColumns + `) VALUES (` + placeholders(19, false) + `)`
	res, err := r.DB.ExecContext(ctx, query, insertArgs(sub)...)
	if err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read submission id: %w", err)
	}
	return id, nil
}

// List returns all submissions, newest first.
func (r *SQLiteRepo) List(ctx context.Context) ([]Summary, error) {
	if r == nil || r.DB == nil {
		return nil, ErrNotConfigured
	}
	return listSummaries(ctx, r.DB)
}

// GetByID returns the full row for id.
func (r *SQLiteRepo) GetByID(ctx context.Context, id int64) (Submission, error) {
	if r == nil || r.DB == nil {
		return Submission{}, ErrNotConfigured
	}
	row := r.DB.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM solicitacoes WHERE id = ?`, id)
	return getSubmission(row)
}

func listSummaries(ctx context.Context, db *sql.DB) ([]Summary, error) {
	rows, err := db.QueryContext(ctx, summaryQuery)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return out, nil
}

func getSubmission(row *sql.Row) (Submission, error) {
	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}

var _ Repo = (*SQLiteRepo)(nil)
