package kardex

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// numericRegex acepta enteros, decimales y notación científica con signo opcional.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Rango de exponentes aceptado (el de un double). Fuera de él el número no se
// puede representar y se trata como no numérico.
const (
	maxExponent = 308
	minExponent = -324
)

// ParseNumber interpreta s como número decimal. Los espacios alrededor se ignoran y una
// cadena en blanco vale 0. Devuelve false si s no es numérico o su exponente excede
// el rango de un double.
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, true
	}
	if !numericRegex.MatchString(s) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxExponent || exp < minExponent {
		return decimal.Zero, false
	}
	return d, true
}

// NormalizeNumeric normaliza un monto importado: acepta coma decimal solo si no hay punto,
// y guarda el valor absoluto. Devuelve "" si el texto no es numérico.
func NormalizeNumeric(value string) string {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return ""
	}
	if strings.Contains(cleaned, ",") && !strings.Contains(cleaned, ".") {
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}
	d, ok := ParseNumber(cleaned)
	if !ok {
		return ""
	}
	return d.Abs().String()
}

// ClampNumberString limpia la entrada de un campo numérico del formulario: deja solo
// dígitos, un punto y (si allowNegative) un '-' inicial.
func ClampNumberString(s string, allowNegative bool) string {
	var b strings.Builder
	dot := false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !dot:
			dot = true
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if !allowNegative {
		out = strings.TrimPrefix(out, "-")
	}
	return out
}
