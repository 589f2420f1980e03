package utils

import "github.com/shopspring/decimal"

// RoundHalfUp arredonda um valor monetário para duas casas decimais usando
// half-up (1.005 -> 1.01), que é a convenção contábil; o arredondamento
// bancário do float64 produziria 1.00.
func RoundHalfUp(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

// RoundFloatHalfUp é a variante para valores vindos direto da API como float64.
func RoundFloatHalfUp(value float64) float64 {
	rounded, _ := RoundHalfUp(decimal.NewFromFloat(value)).Float64()
	return rounded
}
