package submissions

import (
	"errors"
	"sort"
	"strings"

	"cardrequest-backend/internal/validation"
)

var (
	ErrNotFound      = errors.New("submission not found")
	ErrNotConfigured = errors.New("submission store not configured")
)

// ValidationError carries the field violations that blocked a submission.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f := range e.Violations {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid submission: " + strings.Join(fields, ", ")
}
