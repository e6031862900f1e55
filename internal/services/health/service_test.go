package health

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStatusWithoutDatabase(t *testing.T) {
	st := NewService(nil, "", "1.0.0").Status(context.Background())
	if !st.OK || st.Database != "memory" || st.Version != "1.0.0" {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestStatusPingsDatabase(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectPing()
	st := NewService(db, "sqlite3", "1.0.0").Status(context.Background())
	if !st.OK || st.Database != "sqlite3" {
		t.Fatalf("unexpected status %+v", st)
	}

	mock.ExpectPing().WillReturnError(errors.New("disk I/O error"))
	st = NewService(db, "sqlite3", "1.0.0").Status(context.Background())
	if st.OK || st.Database != "unavailable" {
		t.Fatalf("expected unavailable, got %+v", st)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
