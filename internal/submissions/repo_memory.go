package submissions

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	lastID int64
	rows   []Submission
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores a copy of sub under the next id.
func (r *MemoryRepo) Create(ctx context.Context, sub Submission) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	sub.ID = r.lastID
	sub.DadosJSON = append([]byte(nil), sub.DadosJSON...)
	r.rows = append(r.rows, sub)
	return sub.ID, nil
}

// List returns summaries newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Summary, 0, len(r.rows))
	for i := len(r.rows) - 1; i >= 0; i-- {
		sub := r.rows[i]
		out = append(out, Summary{
			Protocolo:        sub.ID,
			CriadoEm:         sub.CreatedAt.Format(time.DateTime),
			RazaoSocial:      sub.RazaoSocial,
			CNPJ:             sub.CNPJ,
			Contato:          sub.ContatoNome,
			Email:            sub.ContatoEmail,
			LimitePretendido: sub.LimitePretendido,
			Status:           sub.Status,
		})
	}
	return out, nil
}

// GetByID returns the submission with id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Submission, error) {
	if err := ctx.Err(); err != nil {
		return Submission{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, sub := range r.rows {
		if sub.ID == id {
			return sub, nil
		}
	}
	return Submission{}, ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
