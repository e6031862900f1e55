package validation

import "regexp"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail checks the local@domain.tld shape. Callers decide whether an empty value is acceptable.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone accepts 10 or 11 digits once formatting is stripped (area code plus number,
// with or without the mobile prefix).
func ValidPhone(s string) bool {
	n := len(DigitsOnly(s))
	return n == 10 || n == 11
}
