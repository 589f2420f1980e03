package utils

import (
	"strings"
	"time"
)

const (
	shipDateLayout        = "2006-01-02T15:04:05"
	shipDateMicroLayout   = "2006-01-02T15:04:05.000000"
	reportOrderDateLayout = "2006-01-02 03:04 PM"
)

// ParseShipDate interpreta a data de envio como a API do SellerCloud devolve,
// com ou sem fração de segundos.
func ParseShipDate(dateStr string) (time.Time, error) {
	shipDate, err := time.Parse(shipDateMicroLayout, dateStr)
	if err == nil {
		return shipDate, nil
	}

	return time.Parse(shipDateLayout, dateStr)
}

// FormatOrderDate formata a data de envio para a coluna order_date do
// relatório ("2024-01-15 03:04 pm").
func FormatOrderDate(t time.Time) string {
	return strings.ToLower(t.Format(reportOrderDateLayout))
}
