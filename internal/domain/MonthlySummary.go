package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary representa o resumo agregado de faturamento de um mês.
// É derivado dos registros mensais e recalculado por inteiro a cada cascata;
// apenas o flag de bloqueio é autorado diretamente.
type MonthlySummary struct {
	Period           string          `json:"period"` // Período no formato mm-yyyy
	TotalAmount      decimal.Decimal `json:"total_amount"`
	FullyBilledCount int             `json:"fully_billed_count"`
	PartialCount     int             `json:"partial_count"`
	ZeroAmountCount  int             `json:"zero_amount_count"`
	IsLocked         bool            `json:"is_locked"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MonthlyReport agrupa o resumo do mês e os registros que o compõem
type MonthlyReport struct {
	Period  string            `json:"period"`
	Summary *MonthlySummary   `json:"summary,omitempty"`
	Records []*MonthlyBilling `json:"records"`
}
