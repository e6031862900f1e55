// Package receipt renders the plain-text confirmation handed to applicants after a submission.
package receipt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Title is the first line of every receipt.
const Title = "COMPROVANTE DE SOLICITAÇÃO - CARTÃO DE CRÉDITO EMPRESARIAL"

const separatorWidth = 66

// Separator frames the entry block.
var Separator = strings.Repeat("-", separatorWidth)

// Entry is one "label: value" line. Value is usually a preformatted string; maps, slices and
// structs are written as compact JSON.
type Entry struct {
	Label string
	Value any
}

// Render builds the UTF-8 receipt: title, separator, one line per entry in order, separator.
func Render(entries []Entry) []byte {
	lines := make([]string, 0, len(entries)+3)
	lines = append(lines, Title, Separator)
	for _, e := range entries {
		lines = append(lines, e.Label+": "+formatValue(e.Value))
	}
	lines = append(lines, Separator)
	return []byte(strings.Join(lines, "\n"))
}

// FileName is the download name for the receipt of a protocol.
func FileName(protocol string) string {
	return "comprovante_" + protocol + ".txt"
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case bool, int, int32, int64, uint, uint32, uint64, float32, float64:
		return fmt.Sprint(val)
	default:
		return compactJSON(val)
	}
}

func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimRight(buf.String(), "\n")
}
