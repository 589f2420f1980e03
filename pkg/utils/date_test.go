package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShipDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "Data com fração de segundos",
			input:    "2024-03-15T14:30:45.123456",
			expected: time.Date(2024, 3, 15, 14, 30, 45, 123456000, time.UTC),
		},
		{
			name:     "Data sem fração de segundos",
			input:    "2024-03-15T14:30:45",
			expected: time.Date(2024, 3, 15, 14, 30, 45, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseShipDate(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseShipDate_FormatoInvalido(t *testing.T) {
	_, err := ParseShipDate("15/03/2024")
	assert.Error(t, err)
}

func TestFormatOrderDate(t *testing.T) {
	shipDate := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-15 02:30 pm", FormatOrderDate(shipDate))
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()

	require.NoError(t, err)
	assert.Len(t, id, 6)
}
