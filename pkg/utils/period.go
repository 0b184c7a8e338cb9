package utils

import (
	"fmt"
	"time"
)

// BillableDaysPerMonth é o mês comercial fixo usado pela política de faturamento.
// Todo mês fatura sobre 30 dias, independentemente do calendário civil.
const BillableDaysPerMonth = 30

// FormatPeriod formata uma data no período mm-yyyy usado nas tabelas mensais
func FormatPeriod(t time.Time) string {
	return fmt.Sprintf("%02d-%04d", int(t.Month()), t.Year())
}

// ParsePeriod extrai mês e ano de um período no formato mm-yyyy
func ParsePeriod(period string) (month int, year int, err error) {
	if len(period) != 7 || period[2] != '-' {
		return 0, 0, fmt.Errorf("período inválido: %q (esperado mm-yyyy)", period)
	}

	t, err := time.Parse("01-2006", period)
	if err != nil {
		return 0, 0, fmt.Errorf("período inválido: %q (esperado mm-yyyy)", period)
	}

	return int(t.Month()), t.Year(), nil
}

// ValidatePeriod valida um período no formato mm-yyyy
func ValidatePeriod(period string) error {
	_, _, err := ParsePeriod(period)
	return err
}

// PeriodYear retorna o ano de um período mm-yyyy
func PeriodYear(period string) (int, error) {
	_, year, err := ParsePeriod(period)
	return year, err
}

// PreviousPeriod retorna o período imediatamente anterior, cruzando a virada de ano
func PreviousPeriod(period string) (string, error) {
	month, year, err := ParsePeriod(period)
	if err != nil {
		return "", err
	}

	month--
	if month == 0 {
		month = 12
		year--
	}

	return fmt.Sprintf("%02d-%04d", month, year), nil
}

// MonthsAgoPeriod retorna o período de n meses atrás de uma data de referência.
// A referência é ancorada no primeiro dia do mês antes do AddDate: a
// normalização de datas do Go no fim do mês (dia 29 a 31) devolveria o mês
// errado, como 31/07 - 1 mês = 01/07.
func MonthsAgoPeriod(ref time.Time, n int) string {
	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return FormatPeriod(anchor.AddDate(0, -n, 0))
}

// IsCurrentOrFuturePeriod indica se o período é o mês corrente ou um mês futuro.
// Recálculos de meses históricos nunca alteram o status "ao vivo" do painel.
func IsCurrentOrFuturePeriod(period string, now time.Time) bool {
	month, year, err := ParsePeriod(period)
	if err != nil {
		return false
	}

	if year != now.Year() {
		return year > now.Year()
	}

	return month >= int(now.Month())
}

// DayFromDate extrai o dia do mês de uma data local no formato yyyy-mm-dd
func DayFromDate(dateStr string) (int, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return 0, fmt.Errorf("data inválida: %q: %w", dateStr, err)
	}

	return date.Day(), nil
}
