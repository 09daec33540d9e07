package utils

import (
	"fmt"
	"time"
)

// ParseHoraMin convierte "HH:MM" a minutos desde medianoche.
func ParseHoraMin(hora string) (int, error) {
	t, err := time.Parse("15:04", hora)
	if err != nil {
		return 0, fmt.Errorf("hora inválida %q: %w", hora, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatMin convierte minutos desde medianoche a "HH:MM".
func FormatMin(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// ParseFechaHora acepta el formato ISO sin zona que manda el cliente
// ("2025-06-10T10:00:00") y también RFC 3339.
func ParseFechaHora(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha y hora inválidas %q", s)
	}
	return t, nil
}

// Solapan indica si dos intervalos en minutos [aInicio, aFin) y
// [bInicio, bFin) se pisan.
func Solapan(aInicio, aFin, bInicio, bFin int) bool {
	return aInicio < bFin && aFin > bInicio
}
