package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/panel-billing-api/infrastructure/database/postgres"
	"github.com/vfg2006/panel-billing-api/internal/domain"
)

const (
	monthlyBillingsTable   = "monthly_billings mb"
	monthlyBillingsColumns = "mb.panel_id, mb.period, mb.billable_days, mb.amount, mb.closing_status, " +
		"mb.applied_rate, mb.panel_code, mb.municipality, mb.schema_version, mb.created_at, mb.updated_at"
)

type MonthlyBillingRepository interface {
	GetByPanelAndPeriod(panelID, period string) (*domain.MonthlyBilling, error)
	ListByPeriod(period string) ([]*domain.MonthlyBilling, error)
	GetAllPeriods() ([]string, error)

	// CommitRecalculation sobrescreve o registro mensal e, quando liveStatus não
	// é nil, espelha o status "ao vivo" do painel — tudo em uma única transação.
	// Ou os dois writes aterrissam ou nenhum deles.
	CommitRecalculation(record *domain.MonthlyBilling, liveStatus *domain.PanelStatus) error
}

type monthlyBillingRepository struct {
	conn *postgres.Connection
}

func NewMonthlyBillingRepository(conn *postgres.Connection) MonthlyBillingRepository {
	return &monthlyBillingRepository{
		conn: conn,
	}
}

func (r *monthlyBillingRepository) GetByPanelAndPeriod(panelID, period string) (*domain.MonthlyBilling, error) {
	query, args, err := squirrel.
		Select(monthlyBillingsColumns).
		From(monthlyBillingsTable).
		Where(squirrel.Eq{"mb.panel_id": panelID, "mb.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	record := &domain.MonthlyBilling{}

	err = row.Scan(
		&record.PanelID,
		&record.Period,
		&record.BillableDays,
		&record.Amount,
		&record.ClosingStatus,
		&record.AppliedRate,
		&record.PanelCode,
		&record.Municipality,
		&record.SchemaVersion,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro mensal: %w", err)
	}

	return record, nil
}

func (r *monthlyBillingRepository) ListByPeriod(period string) ([]*domain.MonthlyBilling, error) {
	query, args, err := squirrel.
		Select(monthlyBillingsColumns).
		From(monthlyBillingsTable).
		Where(squirrel.Eq{"mb.period": period}).
		OrderBy("mb.panel_code ASC").
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

	records := make([]*domain.MonthlyBilling, 0)
	for rows.Next() {
		record := &domain.MonthlyBilling{}
		err := rows.Scan(
			&record.PanelID,
			&record.Period,
			&record.BillableDays,
			&record.Amount,
			&record.ClosingStatus,
			&record.AppliedRate,
			&record.PanelCode,
			&record.Municipality,
			&record.SchemaVersion,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro mensal: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// GetAllPeriods retorna todos os períodos disponíveis no formato mm-yyyy
func (r *monthlyBillingRepository) GetAllPeriods() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT period").
		From("monthly_billings").
		OrderBy("period ASC").
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

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func (r *monthlyBillingRepository) CommitRecalculation(record *domain.MonthlyBilling, liveStatus *domain.PanelStatus) error {
	upsert := squirrel.StatementBuilder.
		Insert("monthly_billings").
		Columns("panel_id", "period", "billable_days", "amount", "closing_status",
			"applied_rate", "panel_code", "municipality", "schema_version").
		Values(
			record.PanelID,
			record.Period,
			record.BillableDays,
			record.Amount,
			record.ClosingStatus,
			record.AppliedRate,
			record.PanelCode,
			record.Municipality,
			record.SchemaVersion,
		).
		Suffix(`
			ON CONFLICT (panel_id, period) DO UPDATE SET
				billable_days = EXCLUDED.billable_days,
				amount = EXCLUDED.amount,
				closing_status = EXCLUDED.closing_status,
				applied_rate = EXCLUDED.applied_rate,
				panel_code = EXCLUDED.panel_code,
				municipality = EXCLUDED.municipality,
				schema_version = EXCLUDED.schema_version,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	upsertQuery, upsertArgs, err := upsert.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var statusQuery string
	var statusArgs []interface{}
	if liveStatus != nil {
		statusQuery, statusArgs, err = squirrel.
			Update("panels").
			Set("status", *liveStatus).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": record.PanelID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}
	}

	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(upsertQuery, upsertArgs...); err != nil {
			return fmt.Errorf("erro ao gravar registro mensal: %w", err)
		}

		if liveStatus != nil {
			if _, err := tx.Exec(statusQuery, statusArgs...); err != nil {
				return fmt.Errorf("erro ao atualizar status do painel: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return err
	}

	return nil
}
