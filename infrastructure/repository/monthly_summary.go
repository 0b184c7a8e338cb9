package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/panel-billing-api/infrastructure/database/postgres"
	"github.com/vfg2006/panel-billing-api/internal/domain"
)

const (
	monthlySummariesTable   = "monthly_summaries ms"
	monthlySummariesColumns = "ms.period, ms.total_amount, ms.fully_billed_count, ms.partial_count, " +
		"ms.zero_amount_count, ms.is_locked, ms.updated_at"
)

type MonthlySummaryRepository interface {
	GetByPeriod(period string) (*domain.MonthlySummary, error)

	// SaveOrUpdate sobrescreve o resumo do período por inteiro, preservando o
	// flag de bloqueio já persistido. Seguro para re-execução.
	SaveOrUpdate(summary *domain.MonthlySummary) error
}

type monthlySummaryRepository struct {
	conn *postgres.Connection
}

func NewMonthlySummaryRepository(conn *postgres.Connection) MonthlySummaryRepository {
	return &monthlySummaryRepository{
		conn: conn,
	}
}

func (r *monthlySummaryRepository) GetByPeriod(period string) (*domain.MonthlySummary, error) {
	query, args, err := squirrel.
		Select(monthlySummariesColumns).
		From(monthlySummariesTable).
		Where(squirrel.Eq{"ms.period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	summary := &domain.MonthlySummary{}

	err = row.Scan(
		&summary.Period,
		&summary.TotalAmount,
		&summary.FullyBilledCount,
		&summary.PartialCount,
		&summary.ZeroAmountCount,
		&summary.IsLocked,
		&summary.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear resumo mensal: %w", err)
	}

	return summary, nil
}

func (r *monthlySummaryRepository) SaveOrUpdate(summary *domain.MonthlySummary) error {
	query := squirrel.StatementBuilder.
		Insert("monthly_summaries").
		Columns("period", "total_amount", "fully_billed_count", "partial_count", "zero_amount_count", "is_locked").
		Values(
			summary.Period,
			summary.TotalAmount,
			summary.FullyBilledCount,
			summary.PartialCount,
			summary.ZeroAmountCount,
			summary.IsLocked,
		).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				total_amount = EXCLUDED.total_amount,
				fully_billed_count = EXCLUDED.fully_billed_count,
				partial_count = EXCLUDED.partial_count,
				zero_amount_count = EXCLUDED.zero_amount_count,
				is_locked = monthly_summaries.is_locked,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
