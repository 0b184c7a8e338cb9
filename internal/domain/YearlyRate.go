package domain

import "github.com/shopspring/decimal"

// YearlyRate representa a tarifa mensal padrão configurada para um ano.
// É usada como fallback quando o painel não tem histórico e é forçada
// na virada de ano, sobrepondo qualquer tarifa customizada herdada.
type YearlyRate struct {
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}
