package utils

import (
	"regexp"
	"strings"
	"time"
)

// Acepta +, espacios y guiones, con al menos 9 dígitos (ej: +34 600 123 456)
var phoneRegex = regexp.MustCompile(`^[+]?[\d\s-]{9,}$`)

// NormalizePhone valida el formato y quita espacios y guiones antes de
// guardar. Devuelve false si el formato no es válido.
func NormalizePhone(raw string) (string, bool) {
	if !phoneRegex.MatchString(raw) {
		return "", false
	}
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(raw)
	return cleaned, true
}

// ParseDate acepta fecha simple (2006-01-02) o RFC3339.
func ParseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// DayRange devuelve el rango semiabierto [día, día+24h) para filtrar por
// fecha de calendario sin importar la hora.
func DayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
