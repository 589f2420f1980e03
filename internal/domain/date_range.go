package domain

import (
	"errors"
	"fmt"
	"time"
)

// Frequency define o período coberto por uma execução do job de COGS.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

var ErrInvalidFrequency = errors.New("frequência inválida")

// QueryTimeFormat é o formato exigido pela query string da API do SellerCloud.
const QueryTimeFormat = "01/02/2006 15:04:05"

// DateRange representa o intervalo fechado [Start, End] de uma execução.
// Invariante: Start <= End; para frequência semanal, Start e End caem sempre
// no mesmo mês calendário.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// QueryStart formata o início do intervalo para a query string da API.
func (r DateRange) QueryStart() string {
	return r.Start.Format(QueryTimeFormat)
}

// QueryEnd formata o fim do intervalo para a query string da API.
func (r DateRange) QueryEnd() string {
	return r.End.Format(QueryTimeFormat)
}

// ComputeRange calcula o intervalo de datas coberto por uma execução a partir
// de uma data de referência e da frequência configurada.
//
// Semanal: a semana é a de segunda a domingo que contém a referência. Quando o
// domingo cai em um mês diferente da segunda, o intervalo é cortado no último
// dia do mês da segunda; o resto da semana fica para a execução do período
// seguinte.
func ComputeRange(reference time.Time, frequency Frequency) (DateRange, error) {
	switch frequency {
	case FrequencyDaily:
		return DateRange{
			Start: startOfDay(reference),
			End:   endOfDay(reference),
		}, nil

	case FrequencyWeekly:
		monday := reference.AddDate(0, 0, -mondayIndex(reference))
		sunday := monday.AddDate(0, 0, 6)

		// A semana nunca atravessa a virada do mês no resultado.
		if sunday.Month() != monday.Month() || sunday.Year() != monday.Year() {
			sunday = lastDayOfMonth(monday)
		}

		return DateRange{
			Start: startOfDay(monday),
			End:   endOfDay(sunday),
		}, nil

	case FrequencyMonthly:
		firstDay := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
		lastDay := firstDay.AddDate(0, 1, 0).AddDate(0, 0, -1)

		return DateRange{
			Start: firstDay,
			End:   endOfDay(lastDay),
		}, nil
	}

	return DateRange{}, fmt.Errorf("%w: %q (valores aceitos: daily, weekly, monthly)", ErrInvalidFrequency, frequency)
}

// mondayIndex retorna o deslocamento do dia dentro da semana começando na
// segunda-feira (segunda = 0, domingo = 6).
func mondayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

func lastDayOfMonth(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
