package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PanelStatus representa o status de um painel publicitário
type PanelStatus string

const (
	PanelStatusActive  PanelStatus = "ACTIVE"
	PanelStatusRemoved PanelStatus = "REMOVED"
	PanelStatusRetired PanelStatus = "RETIRED"
)

// IsBillable indica se o status gera faturamento
func (s PanelStatus) IsBillable() bool {
	return s == PanelStatusActive
}

// Panel representa um painel publicitário cedido a um município
type Panel struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Municipality string          `json:"municipality"`
	Status       PanelStatus     `json:"status"`
	BaseRate     decimal.Decimal `json:"base_rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
