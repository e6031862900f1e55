package submissions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cardrequest-backend/internal/bootstrap"
	"cardrequest-backend/internal/queue"
	"cardrequest-backend/internal/shared/config"
)

const submissionBody = `{
	"empresa": {
		"razao_social": "Padaria Pão & Cia Ltda",
		"cnpj": "11.222.333/0001-81",
		"ramo": "Padaria",
		"faturamento_mensal": "100000",
		"qtd_func": 12
	},
	"responsavel": {
		"nome": "Maria Souza",
		"email": "maria@paoecia.example",
		"telefone": "(11) 98765-4321",
		"cpf": "529.982.247-25",
		"cargo": "Sócia"
	},
	"solicitacao": {
		"limite": 50000,
		"qtde_cartoes": 2,
		"vencimento": 15,
		"adesao_pontos": false,
		"participa_credenciamento": true
	},
	"documentos": {"contrato_social": "uploads/contrato_20240517143002_contrato.pdf"},
	"consentimento": {"aceite": true}
}`

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	return config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
		DatabasePath:    filepath.Join(dir, "data", "db.sqlite3"),
		ObjectStoreType: "local",
		UploadDir:       filepath.Join(dir, "uploads"),
		AdminView:       true,
		AppVersion:      "1.0.0",
	}
}

func buildApp(t *testing.T, cfg config.Config, q queue.Client) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	now := func() time.Time { return time.Date(2024, 5, 17, 14, 30, 2, 0, time.Local) }
	app, err := bootstrap.BuildWith(context.Background(), cfg, bootstrap.Options{Now: now, Queue: q})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSubmitListAndReceipt(t *testing.T) {
	q := queue.NewMemoryClient()
	app := buildApp(t, testConfig(t), q)
	router := app.Router

	resp := do(router, http.MethodGet, "/api/v1/admin/submissions", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if strings.TrimSpace(resp.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %s", resp.Body.String())
	}

	resp = do(router, http.MethodPost, "/api/v1/submissions", submissionBody)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID              int64  `json:"id"`
		Protocolo       string `json:"protocolo"`
		Receipt         string `json:"receipt"`
		ReceiptFileName string `json:"receiptFileName"`
		Eligibility     struct {
			Level string `json:"level"`
		} `json:"eligibility"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID != 1 || created.Protocolo != "20240517-000001" {
		t.Fatalf("unexpected create response %+v", created)
	}
	if created.ReceiptFileName != "comprovante_20240517-000001.txt" {
		t.Fatalf("unexpected receipt file name %q", created.ReceiptFileName)
	}
	if !strings.Contains(created.Receipt, "Participa Credenciamento: Sim") {
		t.Fatalf("unexpected receipt:\n%s", created.Receipt)
	}
	if created.Eligibility.Level != "moderate" {
		t.Fatalf("expected moderate eligibility, got %q", created.Eligibility.Level)
	}
	if len(q.Messages()) != 1 {
		t.Fatalf("expected one queue message, got %d", len(q.Messages()))
	}

	resp = do(router, http.MethodGet, "/api/v1/admin/submissions", "")
	var list []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 row, got %d", len(list))
	}
	row := list[0]
	if row["Protocolo"] != float64(1) || row["LimitePretendido"] != "R$ 50.000,00" || row["CriadoEm"] != "2024-05-17 14:30:02" {
		t.Fatalf("unexpected row %v", row)
	}

	resp = do(router, http.MethodGet, "/api/v1/submissions/1/receipt", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := resp.Header().Get("Content-Disposition"); !strings.Contains(got, "comprovante_20240517-000001.txt") {
		t.Fatalf("unexpected content disposition %q", got)
	}
	if resp.Body.String() != created.Receipt {
		t.Fatalf("re-rendered receipt differs:\n%s\n---\n%s", resp.Body.String(), created.Receipt)
	}

	if resp := do(router, http.MethodGet, "/api/v1/submissions/99/receipt", ""); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if resp := do(router, http.MethodGet, "/api/v1/submissions/abc/receipt", ""); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestSubmitValidationErrors(t *testing.T) {
	app := buildApp(t, testConfig(t), nil)

	body := strings.Replace(submissionBody, "529.982.247-25", "529.982.247-26", 1)
	resp := do(app.Router, http.MethodPost, "/api/v1/submissions", body)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
	var payload struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Error.Code != "validation_error" || payload.Error.Details["responsavel.cpf"] != "invalid" {
		t.Fatalf("unexpected error payload %+v", payload)
	}

	resp = do(app.Router, http.MethodPost, "/api/v1/submissions", `{"empresa":{"faturamento_mensal":"abc"}}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric amount, got %d", resp.Code)
	}

	resp = do(app.Router, http.MethodGet, "/api/v1/admin/submissions", "")
	if strings.TrimSpace(resp.Body.String()) != "[]" {
		t.Fatalf("expected nothing stored, got %s", resp.Body.String())
	}
}

func TestValidateEndpoint(t *testing.T) {
	app := buildApp(t, testConfig(t), nil)

	resp := do(app.Router, http.MethodPost, "/api/v1/submissions/validate", submissionBody)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var ok struct {
		Valid      bool              `json:"valid"`
		Violations map[string]string `json:"violations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ok); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ok.Valid || len(ok.Violations) != 0 {
		t.Fatalf("expected valid payload, got %+v", ok)
	}

	resp = do(app.Router, http.MethodPost, "/api/v1/submissions/validate", `{"empresa":{"cnpj":"123"}}`)
	var bad struct {
		Valid      bool              `json:"valid"`
		Violations map[string]string `json:"violations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&bad); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bad.Valid || bad.Violations["empresa.cnpj"] != "invalid" {
		t.Fatalf("unexpected violations %+v", bad)
	}
}

func TestEligibilityEndpoint(t *testing.T) {
	app := buildApp(t, testConfig(t), nil)

	tests := []struct {
		query      string
		status     int
		applicable bool
		level      string
	}{
		{query: "limite=10000&faturamento=100000", status: http.StatusOK, applicable: true, level: "compatible"},
		{query: "limite=200000&faturamento=100000", status: http.StatusOK, applicable: true, level: "exceeds_revenue"},
		{query: "limite=10000", status: http.StatusOK},
		{query: "limite=abc&faturamento=1", status: http.StatusBadRequest},
	}
	for _, tt := range tests {
		resp := do(app.Router, http.MethodGet, "/api/v1/eligibility?"+tt.query, "")
		if resp.Code != tt.status {
			t.Fatalf("%s: expected %d, got %d", tt.query, tt.status, resp.Code)
		}
		if tt.status != http.StatusOK {
			continue
		}
		var got struct {
			Applicable bool   `json:"applicable"`
			Level      string `json:"level"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Applicable != tt.applicable || got.Level != tt.level {
			t.Fatalf("%s: unexpected %+v", tt.query, got)
		}
	}
}

func TestAdminViewDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminView = false
	app := buildApp(t, cfg, nil)

	if resp := do(app.Router, http.MethodGet, "/api/v1/admin/submissions", ""); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestSubmitRateLimited(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimitRPS = 1
	cfg.RateLimitBurst = 1
	app := buildApp(t, cfg, nil)

	if resp := do(app.Router, http.MethodPost, "/api/v1/submissions", submissionBody); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if resp := do(app.Router, http.MethodPost, "/api/v1/submissions", submissionBody); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}
	if resp := do(app.Router, http.MethodPost, "/api/v1/submissions/validate", submissionBody); resp.Code != http.StatusOK {
		t.Fatalf("validate is not rate limited, got %d", resp.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	app := buildApp(t, testConfig(t), nil)

	resp := do(app.Router, http.MethodGet, "/api/v1/health", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var st struct {
		OK       bool   `json:"ok"`
		Database string `json:"database"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !st.OK || st.Database != "sqlite3" {
		t.Fatalf("unexpected health %+v", st)
	}

	resp = do(app.Router, http.MethodGet, "/metrics", "")
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), "cardrequest_submission_save_duration_seconds") {
		t.Fatalf("unexpected metrics response %d", resp.Code)
	}
}
