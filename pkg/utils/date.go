package utils

import "time"

// ISO8601Layout segue o formato de isoformat() com precisão de microssegundos
const ISO8601Layout = "2006-01-02T15:04:05.000000"

func FormatISO8601(t time.Time) string {
	return t.Format(ISO8601Layout)
}

// FormatDateTime formata a data para exibição no console
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
