package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name          string
		period        string
		expectedMonth int
		expectedYear  int
		hasError      bool
	}{
		{
			name:          "Período válido no meio do ano",
			period:        "04-2025",
			expectedMonth: 4,
			expectedYear:  2025,
		},
		{
			name:          "Período válido em dezembro",
			period:        "12-2024",
			expectedMonth: 12,
			expectedYear:  2024,
		},
		{
			name:     "Mês zero deve falhar",
			period:   "00-2025",
			hasError: true,
		},
		{
			name:     "Mês treze deve falhar",
			period:   "13-2025",
			hasError: true,
		},
		{
			name:     "Formato yyyy-mm deve falhar",
			period:   "2025-04",
			hasError: true,
		},
		{
			name:     "String vazia deve falhar",
			period:   "",
			hasError: true,
		},
		{
			name:     "Sem zero à esquerda deve falhar",
			period:   "4-2025",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, year, err := ParsePeriod(tt.period)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMonth, month)
			assert.Equal(t, tt.expectedYear, year)
		})
	}
}

func TestFormatPeriod(t *testing.T) {
	assert.Equal(t, "04-2025", FormatPeriod(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12-2024", FormatPeriod(time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "01-2026", FormatPeriod(time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC)))
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		name     string
		period   string
		expected string
		hasError bool
	}{
		{
			name:     "Mês no meio do ano",
			period:   "04-2025",
			expected: "03-2025",
		},
		{
			name:     "Janeiro cruza a virada de ano",
			period:   "01-2025",
			expected: "12-2024",
		},
		{
			name:     "Período inválido deve falhar",
			period:   "99-2025",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous, err := PreviousPeriod(tt.period)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, previous)
		})
	}
}

func TestMonthsAgoPeriod(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		months   int
		expected string
	}{
		{
			name:     "Meio do mês",
			ref:      time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC),
			months:   1,
			expected: "06-2026",
		},
		{
			name:     "Dia 31 não volta para o próprio mês",
			ref:      time.Date(2026, 7, 31, 10, 0, 0, 0, time.UTC),
			months:   1,
			expected: "06-2026",
		},
		{
			name:     "Dia 30 cruzando fevereiro",
			ref:      time.Date(2026, 3, 30, 10, 0, 0, 0, time.UTC),
			months:   1,
			expected: "02-2026",
		},
		{
			name:     "Zero meses é o mês corrente",
			ref:      time.Date(2026, 7, 31, 23, 59, 0, 0, time.UTC),
			months:   0,
			expected: "07-2026",
		},
		{
			name:     "Janeiro cruza a virada de ano",
			ref:      time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
			months:   1,
			expected: "12-2025",
		},
		{
			name:     "Vários meses para trás",
			ref:      time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
			months:   4,
			expected: "11-2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsAgoPeriod(tt.ref, tt.months))
		})
	}
}

func TestIsCurrentOrFuturePeriod(t *testing.T) {
	now := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		period   string
		expected bool
	}{
		{
			name:     "Mês corrente é corrente ou futuro",
			period:   "04-2025",
			expected: true,
		},
		{
			name:     "Mês futuro no mesmo ano",
			period:   "05-2025",
			expected: true,
		},
		{
			name:     "Ano futuro",
			period:   "01-2026",
			expected: true,
		},
		{
			name:     "Mês anterior no mesmo ano é histórico",
			period:   "03-2025",
			expected: false,
		},
		{
			name:     "Ano anterior é histórico",
			period:   "12-2024",
			expected: false,
		},
		{
			name:     "Período inválido nunca é corrente",
			period:   "banana",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsCurrentOrFuturePeriod(tt.period, now))
		})
	}
}

func TestDayFromDate(t *testing.T) {
	day, err := DayFromDate("2025-04-10")
	assert.NoError(t, err)
	assert.Equal(t, 10, day)

	_, err = DayFromDate("10/04/2025")
	assert.Error(t, err)
}
