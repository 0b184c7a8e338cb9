package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBillingSchemaVersion é a versão atual do documento de faturamento mensal
const MonthlyBillingSchemaVersion = 2

// MonthlyBilling representa o registro de faturamento de um painel em um mês.
// É uma projeção derivada: sempre sobrescrito por inteiro no recálculo, nunca
// editado manualmente. A identidade persistente é o par (panel_id, period).
type MonthlyBilling struct {
	PanelID       string          `json:"panel_id"`
	Period        string          `json:"period"` // Período no formato mm-yyyy
	BillableDays  int             `json:"billable_days"`
	Amount        decimal.Decimal `json:"amount"`
	ClosingStatus PanelStatus     `json:"closing_status"`
	AppliedRate   decimal.Decimal `json:"applied_rate"`
	PanelCode     string          `json:"panel_code"`
	Municipality  string          `json:"municipality"`
	SchemaVersion int             `json:"schema_version"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PanelRecalculationFailure representa a falha de recálculo de um único painel
type PanelRecalculationFailure struct {
	PanelID string `json:"panel_id"`
	Reason  string `json:"reason"`
}

// BulkRecalculationResult representa o resultado de uma regeneração em lote.
// Sucessos e falhas são listados separadamente para que sucesso parcial seja
// sempre distinguível de falha total.
type BulkRecalculationResult struct {
	Period    string                      `json:"period"`
	Succeeded []string                    `json:"succeeded"`
	Failed    []PanelRecalculationFailure `json:"failed"`
}
