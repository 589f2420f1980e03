package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Meio centavo deve arredondar para cima",
			input:    "1.005",
			expected: "1.01",
		},
		{
			name:     "Abaixo do meio centavo deve arredondar para baixo",
			input:    "1.004",
			expected: "1",
		},
		{
			name:     "Acima do meio centavo deve arredondar para cima",
			input:    "1.006",
			expected: "1.01",
		},
		{
			name:     "Soma de custos unitários com meio centavo",
			input:    "20.01",
			expected: "20.01",
		},
		{
			name:     "Valor já com duas casas não muda",
			input:    "99.99",
			expected: "99.99",
		},
		{
			name:     "Zero permanece zero",
			input:    "0",
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value := decimal.RequireFromString(tt.input)
			result := RoundHalfUp(value)

			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestRoundFloatHalfUp(t *testing.T) {
	assert.Equal(t, 20.01, RoundFloatHalfUp(2 * 10.005))
	assert.Equal(t, 1.01, RoundFloatHalfUp(1.005))
}
