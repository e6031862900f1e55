package submissions

import "context"

// Repo persists submissions. Ids are assigned by the store, strictly increasing and never reused.
type Repo interface {
	Create(ctx context.Context, sub Submission) (int64, error)
	// List returns every submission newest first; an empty store yields an empty slice.
	List(ctx context.Context) ([]Summary, error)
	GetByID(ctx context.Context, id int64) (Submission, error)
}
