package kardex

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout formato de fecha persistido (yyyy-mm-dd).
const DateLayout = "2006-01-02"

var (
	isoDateRegex   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slashDateRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

	// Formatos alternativos probados en orden cuando la fecha no es ISO ni d/m/aaaa.
	fallbackDateLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-1-2",
		"2006/01/02",
		"2006/1/2",
		"2006.01.02",
		"Jan 2, 2006",
		"January 2, 2006",
		"2 Jan 2006",
		"2 January 2006",
		"Mon, 02 Jan 2006",
	}
)

// NormalizeDate convierte una fecha importada a yyyy-mm-dd. Fechas ya ISO pasan sin cambios,
// d/m/aaaa se reordena, y el resto se intenta con formatos comunes. Devuelve "" si no se reconoce.
func NormalizeDate(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return ""
	}
	if isoDateRegex.MatchString(raw) {
		return raw
	}
	if m := slashDateRegex.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], pad2(m[2]), pad2(m[1]))
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout)
		}
	}
	return ""
}

// Today fecha de hoy en formato yyyy-mm-dd (zona local de now).
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
