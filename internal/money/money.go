// Package money renders amounts the way Brazilian Real values are displayed on forms and receipts.
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencyPrefix = "R$ "

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatAmount renders v as "R$ 1.234,50".
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return currencyPrefix + printer.Sprintf("%.2f", v)
}

// FormatOptional renders nil as an empty string.
func FormatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return FormatAmount(*v)
}

// Format accepts numbers, numeric strings or nothing. Empty input yields "" and values that
// cannot be read as a decimal are returned in their literal form.
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return ""
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return val
		}
		return FormatAmount(f)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return val.String()
		}
		return FormatAmount(f)
	case *float64:
		return FormatOptional(val)
	case float64:
		return FormatAmount(val)
	case float32:
		return FormatAmount(float64(val))
	case int:
		return FormatAmount(float64(val))
	case int32:
		return FormatAmount(float64(val))
	case int64:
		return FormatAmount(float64(val))
	case uint:
		return FormatAmount(float64(val))
	case uint32:
		return FormatAmount(float64(val))
	case uint64:
		return FormatAmount(float64(val))
	default:
		return fmt.Sprint(val)
	}
}
