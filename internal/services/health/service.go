package health

import (
	"context"
	"database/sql"
	"time"
)

// Status is the /health payload.
type Status struct {
	OK       bool   `json:"ok"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB      *sql.DB
	Dialect string
	Version string
}

// NewService constructs a new health service. db may be nil when running on memory repositories.
func NewService(db *sql.DB, dialect, version string) *Service {
	return &Service{DB: db, Dialect: dialect, Version: version}
}

// Status pings the database and reports the result.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Version: s.Version, Database: "memory"}
	if s.DB == nil {
		return st
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.DB.PingContext(pingCtx); err != nil {
		st.OK = false
		st.Database = "unavailable"
		return st
	}
	st.Database = s.Dialect
	return st
}
