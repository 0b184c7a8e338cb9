package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/panel-billing-api/infrastructure/database/postgres"
	"github.com/vfg2006/panel-billing-api/internal/domain"
)

const yearlyRatesTable = "yearly_rates yr"

type YearlyRateRepository interface {
	// GetByYear retorna a tarifa padrão do ano, ou nil quando não configurada
	GetByYear(year int) (*domain.YearlyRate, error)
}

type yearlyRateRepository struct {
	conn *postgres.Connection
}

func NewYearlyRateRepository(conn *postgres.Connection) YearlyRateRepository {
	return &yearlyRateRepository{
		conn: conn,
	}
}

func (r *yearlyRateRepository) GetByYear(year int) (*domain.YearlyRate, error) {
	query, args, err := squirrel.
		Select("yr.year, yr.amount").
		From(yearlyRatesTable).
		Where(squirrel.Eq{"yr.year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	rate := &domain.YearlyRate{}

	err = row.Scan(&rate.Year, &rate.Amount)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tarifa anual: %w", err)
	}

	return rate, nil
}
