package validation

import "strings"

// Violation codes returned to the form layer.
const (
	CodeRequired       = "required"
	CodeInvalid        = "invalid"
	CodeMustBePositive = "must_be_positive"
	CodeNotAllowed     = "not_allowed"
	CodeMustAccept     = "must_accept"
)

// Violations maps a field path (e.g. "empresa.cnpj") to a violation code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Add records code for field unless the field already has a violation.
func (v Violations) Add(field, code string) {
	if _, ok := v[field]; ok {
		return
	}
	v[field] = code
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, CodeRequired)
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v.Add(field, CodeMustBePositive)
	}
}

// NonNegative flags negative amounts and counts.
func NonNegative(field string, val float64, v Violations) {
	if val < 0 {
		v.Add(field, CodeInvalid)
	}
}

// OneOf flags val when it is not part of allowed.
func OneOf(field string, val int, allowed []int, v Violations) {
	for _, a := range allowed {
		if a == val {
			return
		}
	}
	v.Add(field, CodeNotAllowed)
}

// Accepted flags a consent box left unchecked.
func Accepted(field string, val bool, v Violations) {
	if !val {
		v.Add(field, CodeMustAccept)
	}
}

// CPF requires a non-empty, check-digit valid CPF.
func CPF(field, value string, v Violations) {
	Required(field, value, v)
	if strings.TrimSpace(value) != "" && !ValidCPF(value) {
		v.Add(field, CodeInvalid)
	}
}

// CNPJ requires a non-empty, check-digit valid CNPJ.
func CNPJ(field, value string, v Violations) {
	Required(field, value, v)
	if strings.TrimSpace(value) != "" && !ValidCNPJ(value) {
		v.Add(field, CodeInvalid)
	}
}

// Email validates the shape of a non-empty value only.
func Email(field, value string, v Violations) {
	if strings.TrimSpace(value) != "" && !ValidEmail(strings.TrimSpace(value)) {
		v.Add(field, CodeInvalid)
	}
}

// Phone validates the digit count of a non-empty value only.
func Phone(field, value string, v Violations) {
	if strings.TrimSpace(value) != "" && !ValidPhone(value) {
		v.Add(field, CodeInvalid)
	}
}
