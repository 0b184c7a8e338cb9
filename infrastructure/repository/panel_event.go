package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/panel-billing-api/infrastructure/database/postgres"
	"github.com/vfg2006/panel-billing-api/internal/domain"
)

const (
	panelEventsTable   = "panel_events pe"
	panelEventsColumns = "pe.id, pe.panel_id, pe.period, pe.action, pe.event_date, pe.day, " +
		"pe.amount, pe.rate, pe.snapshot_before, pe.snapshot_after, pe.deleted, " +
		"pe.idempotency_key, pe.created_at"
)

type PanelEventRepository interface {
	// ListByPanelAndPeriod retorna todos os eventos do par (painel, período),
	// inclusive os soft-deletados. O filtro de deleção e a ordenação cronológica
	// são aplicados em memória pelo engine, por portabilidade.
	ListByPanelAndPeriod(panelID, period string) ([]*domain.PanelEvent, error)
}

type panelEventRepository struct {
	conn *postgres.Connection
}

func NewPanelEventRepository(conn *postgres.Connection) PanelEventRepository {
	return &panelEventRepository{
		conn: conn,
	}
}

func (r *panelEventRepository) ListByPanelAndPeriod(panelID, period string) ([]*domain.PanelEvent, error) {
	query, args, err := squirrel.
		Select(panelEventsColumns).
		From(panelEventsTable).
		Where(squirrel.Eq{"pe.panel_id": panelID, "pe.period": period}).
		OrderBy("pe.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.PanelEvent, 0)
	for rows.Next() {
		event := &domain.PanelEvent{}
		var amount, rate decimal.NullDecimal

		err := rows.Scan(
			&event.ID,
			&event.PanelID,
			&event.Period,
			&event.Action,
			&event.EventDate,
			&event.Day,
			&amount,
			&rate,
			&event.SnapshotBefore,
			&event.SnapshotAfter,
			&event.Deleted,
			&event.IdempotencyKey,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento de painel: %w", err)
		}

		if amount.Valid {
			event.Amount = &amount.Decimal
		}
		if rate.Valid {
			event.Rate = &rate.Decimal
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}
