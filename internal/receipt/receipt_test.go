package receipt

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderLayout(t *testing.T) {
	out := Render([]Entry{
		{Label: "Protocolo", Value: "20240101-000001"},
		{Label: "Limite", Value: "R$ 1.000,00"},
	})
	if !utf8.Valid(out) {
		t.Fatalf("receipt is not valid UTF-8")
	}
	lines := strings.Split(string(out), "\n")
	want := []string{
		Title,
		strings.Repeat("-", 66),
		"Protocolo: 20240101-000001",
		"Limite: R$ 1.000,00",
		strings.Repeat("-", 66),
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if len(lines[1]) != 66 || len(lines[4]) != 66 {
		t.Fatalf("separators must be 66 characters")
	}
}

func TestRenderEmpty(t *testing.T) {
	lines := strings.Split(string(Render(nil)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected title and two separators, got %q", lines)
	}
}

func TestRenderValueKinds(t *testing.T) {
	out := string(Render([]Entry{
		{Label: "Qtd Cartões", Value: 3},
		{Label: "Docs", Value: map[string]any{"contrato_social": "uploads/contrato_x.pdf"}},
		{Label: "Lista", Value: []string{"a", "ç"}},
		{Label: "Vazio", Value: nil},
	}))
	for _, want := range []string{
		"Qtd Cartões: 3",
		`Docs: {"contrato_social":"uploads/contrato_x.pdf"}`,
		`Lista: ["a","ç"]`,
		"Vazio: \n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in receipt:\n%s", want, out)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("20240101-000001"); got != "comprovante_20240101-000001.txt" {
		t.Fatalf("FileName = %q", got)
	}
}
