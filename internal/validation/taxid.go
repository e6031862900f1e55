package validation

import "strings"

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// DigitsOnly drops every character that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// ValidCPF reports whether s holds a structurally valid CPF (11 digits, two check digits).
// Punctuation such as "529.982.247-25" is ignored.
func ValidCPF(s string) bool {
	cpf := DigitsOnly(s)
	if len(cpf) != 11 || allSame(cpf) {
		return false
	}
	d1 := cpfCheckDigit(cpf[:9], 10)
	d2 := cpfCheckDigit(cpf[:10], 11)
	return d1 == int(cpf[9]-'0') && d2 == int(cpf[10]-'0')
}

// cpfCheckDigit weights digits from startWeight down to 2.
func cpfCheckDigit(digits string, startWeight int) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (startWeight - i)
	}
	r := (sum * 10) % 11
	if r == 10 {
		return 0
	}
	return r
}

// ValidCNPJ reports whether s holds a structurally valid CNPJ (14 digits, two check digits).
func ValidCNPJ(s string) bool {
	cnpj := DigitsOnly(s)
	if len(cnpj) != 14 || allSame(cnpj) {
		return false
	}
	d1 := cnpjCheckDigit(cnpj[:12], cnpjWeightsFirst)
	d2 := cnpjCheckDigit(cnpj[:12]+string(d1), cnpjWeightsSecond)
	return cnpj[12:] == string([]byte{d1, d2})
}

func cnpjCheckDigit(digits string, weights []int) byte {
	sum := 0
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + 11 - r)
}

// FormatCPF renders a CPF as 000.000.000-00. Input that is not 11 digits is returned unchanged.
func FormatCPF(s string) string {
	d := DigitsOnly(s)
	if len(d) != 11 {
		return s
	}
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

// FormatCNPJ renders a CNPJ as 00.000.000/0000-00. Input that is not 14 digits is returned unchanged.
func FormatCNPJ(s string) string {
	d := DigitsOnly(s)
	if len(d) != 14 {
		return s
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
