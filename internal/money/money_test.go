package money

import (
	"encoding/json"
	"testing"
)

func TestFormat(t *testing.T) {
	limit := 2500.0
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"grouping and decimals", 1234.5, "R$ 1.234,50"},
		{"zero", 0, "R$ 0,00"},
		{"zero float", 0.0, "R$ 0,00"},
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"blank string", "   ", ""},
		{"numeric string", "1000", "R$ 1.000,00"},
		{"millions", 1234567.891, "R$ 1.234.567,89"},
		{"small", 9.99, "R$ 9,99"},
		{"int64", int64(300), "R$ 300,00"},
		{"json number", json.Number("15000.5"), "R$ 15.000,50"},
		{"pointer", &limit, "R$ 2.500,00"},
		{"nil pointer", (*float64)(nil), ""},
		{"literal fallback", "abc", "abc"},
		{"non numeric type", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Fatalf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatOptional(t *testing.T) {
	if got := FormatOptional(nil); got != "" {
		t.Fatalf("FormatOptional(nil) = %q", got)
	}
	v := 1234.5
	if got := FormatOptional(&v); got != "R$ 1.234,50" {
		t.Fatalf("FormatOptional = %q", got)
	}
}
