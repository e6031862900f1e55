package submissions

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cardrequest-backend/internal/shared/storage/db"
)

func openTestSQLite(t *testing.T, path string) *SQLiteRepo {
	t.Helper()
	ctx := context.Background()
	sqlDB, err := db.OpenSQLite(ctx, path, db.DefaultSQLiteOptions())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := db.RunMigrations(ctx, sqlDB, db.DialectSQLite); err != nil {
		sqlDB.Close()
		t.Fatalf("RunMigrations: %v", err)
	}
	return &SQLiteRepo{DB: sqlDB}
}

func TestSQLiteRepoEmptyList(t *testing.T) {
	repo := openTestSQLite(t, filepath.Join(t.TempDir(), "db.sqlite3"))
	t.Cleanup(func() { _ = repo.DB.Close() })

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSQLiteRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "db.sqlite3")
	repo := openTestSQLite(t, path)

	sub, err := NewSubmission(validPayload(), fixedNow())
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := repo.Create(ctx, sub)
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Fatalf("ids not strictly increasing: %v", ids)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(list))
	}
	first := list[0]
	if first.Protocolo != ids[2] {
		t.Fatalf("expected newest first, got id %d", first.Protocolo)
	}
	if first.CriadoEm != "2024-05-17 14:30:02" {
		t.Fatalf("unexpected CriadoEm %q", first.CriadoEm)
	}
	if first.CNPJ != "11222333000181" || first.Contato != "Maria Souza" || first.Status != StatusReceived {
		t.Fatalf("unexpected summary %+v", first)
	}
	if first.LimitePretendido == nil || *first.LimitePretendido != 20000 {
		t.Fatalf("unexpected limit %v", first.LimitePretendido)
	}

	got, err := repo.GetByID(ctx, ids[0])
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.CreatedAt.Equal(fixedNow()) || got.ContatoCPF != "52998224725" || got.VencimentoFatura != 10 {
		t.Fatalf("unexpected row %+v", got)
	}
	if got.QtdFuncionarios == nil || *got.QtdFuncionarios != 12 || !got.AdesaoPontos || got.ParticipaCredenciamento {
		t.Fatalf("unexpected optional fields %+v", got)
	}
	if string(got.DadosJSON) != string(sub.DadosJSON) {
		t.Fatalf("dados_json changed:\n%s\n%s", got.DadosJSON, sub.DadosJSON)
	}

	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Ids survive a restart and are never reused.
	if err := repo.DB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	reopened := openTestSQLite(t, path)
	t.Cleanup(func() { _ = reopened.DB.Close() })

	list, err = reopened.List(ctx)
	if err != nil {
		t.Fatalf("List after reopen: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 rows after reopen, got %d", len(list))
	}
	next, err := reopened.Create(ctx, sub)
	if err != nil {
		t.Fatalf("Create after reopen: %v", err)
	}
	if next <= ids[2] {
		t.Fatalf("expected id above %d, got %d", ids[2], next)
	}
}

func TestSQLiteRepoStoresNulls(t *testing.T) {
	ctx := context.Background()
	repo := openTestSQLite(t, filepath.Join(t.TempDir(), "db.sqlite3"))
	t.Cleanup(func() { _ = repo.DB.Close() })

	p := validPayload()
	p.Empresa.FaturamentoMensal = Float(0)
	p.Solicitacao.Limite = Float(0)
	p.Empresa.QtdFuncionarios = Int(0)
	sub, err := NewSubmission(p, fixedNow())
	if err != nil {
		t.Fatalf("NewSubmission: %v", err)
	}
	id, err := repo.Create(ctx, sub)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var revenueNull, limitNull, employeesNull bool
	err = repo.DB.QueryRowContext(ctx,
		`SELECT faturamento_mensal IS NULL, limite_pretendido IS NULL, qntd_funcionarios IS NULL FROM solicitacoes WHERE id = ?`, id,
	).Scan(&revenueNull, &limitNull, &employeesNull)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !revenueNull || !limitNull || employeesNull {
		t.Fatalf("unexpected null flags revenue=%v limit=%v employees=%v", revenueNull, limitNull, employeesNull)
	}
}

func TestSQLiteRepoNotConfigured(t *testing.T) {
	var repo *SQLiteRepo
	if _, err := repo.Create(context.Background(), Submission{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
