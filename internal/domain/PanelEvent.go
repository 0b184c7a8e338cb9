package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// EventAction representa o tipo de ação registrada para um painel
type EventAction string

const (
	// Ações de ativação: o painel passa (ou volta) a faturar
	EventInitialIntake  EventAction = "INITIAL_INTAKE"
	EventReactivation   EventAction = "REACTIVATION"
	EventReinstallation EventAction = "REINSTALLATION"

	// Ações de desativação: o painel deixa de faturar a partir do dia seguinte
	EventRemoval    EventAction = "REMOVAL"
	EventRetirement EventAction = "RETIREMENT"

	// Ações sem efeito sobre períodos
	EventRateChange       EventAction = "RATE_CHANGE"
	EventManualAdjustment EventAction = "MANUAL_ADJUSTMENT"
	EventIntervention     EventAction = "INTERVENTION"
)

// IsActivation indica se a ação abre um período ativo
func (a EventAction) IsActivation() bool {
	return a == EventInitialIntake || a == EventReactivation || a == EventReinstallation
}

// IsDeactivation indica se a ação encerra um período ativo
func (a EventAction) IsDeactivation() bool {
	return a == EventRemoval || a == EventRetirement
}

// DeactivationStatus retorna o status resultante de uma ação de desativação
func (a EventAction) DeactivationStatus() PanelStatus {
	if a == EventRetirement {
		return PanelStatusRetired
	}
	return PanelStatusRemoved
}

// PanelEvent representa um fato imutável registrado para um painel em uma data local.
// Os eventos são a única fonte de verdade do recálculo mensal: o faturamento de um
// mês é inteiramente derivável dos seus eventos mais o fechamento do mês anterior.
type PanelEvent struct {
	ID             string           `json:"id"`
	PanelID        string           `json:"panel_id"`
	Period         string           `json:"period"` // Período no formato mm-yyyy
	Action         EventAction      `json:"action"`
	EventDate      string           `json:"event_date"` // Data local no formato yyyy-mm-dd
	Day            int              `json:"day"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	Rate           *decimal.Decimal `json:"rate,omitempty"`
	SnapshotBefore json.RawMessage  `json:"snapshot_before,omitempty"`
	SnapshotAfter  json.RawMessage  `json:"snapshot_after,omitempty"`
	Deleted        bool             `json:"deleted"`
	IdempotencyKey string           `json:"idempotency_key"`
	CreatedAt      time.Time        `json:"created_at"`
}
