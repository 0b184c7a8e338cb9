package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/panel-billing-api/infrastructure/database/postgres"
	"github.com/vfg2006/panel-billing-api/internal/domain"
)

const (
	panelsTable   = "panels p"
	panelsColumns = "p.id, p.code, p.municipality, p.status, p.base_rate, p.created_at, p.updated_at"
)

type PanelRepository interface {
	GetByID(id string) (*domain.Panel, error)
	GetByCode(code string) (*domain.Panel, error)
	ListPanels() ([]*domain.Panel, error)
}

type panelRepository struct {
	conn *postgres.Connection
}

func NewPanelRepository(conn *postgres.Connection) PanelRepository {
	return &panelRepository{
		conn: conn,
	}
}

func (r *panelRepository) GetByID(id string) (*domain.Panel, error) {
	query, args, err := squirrel.
		Select(panelsColumns).
		From(panelsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	panel, err := r.scanPanel(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear painel: %w", err)
	}

	return panel, nil
}

func (r *panelRepository) GetByCode(code string) (*domain.Panel, error) {
	query, args, err := squirrel.
		Select(panelsColumns).
		From(panelsTable).
		Where(squirrel.Eq{"p.code": code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	panel, err := r.scanPanel(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear painel: %w", err)
	}

	return panel, nil
}

func (r *panelRepository) ListPanels() ([]*domain.Panel, error) {
	query, args, err := squirrel.
		Select(panelsColumns).
		From(panelsTable).
		OrderBy("p.code ASC").
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

	panels := make([]*domain.Panel, 0)
	for rows.Next() {
		panel := &domain.Panel{}
		err := rows.Scan(
			&panel.ID,
			&panel.Code,
			&panel.Municipality,
			&panel.Status,
			&panel.BaseRate,
			&panel.CreatedAt,
			&panel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear painel: %w", err)
		}
		panels = append(panels, panel)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return panels, nil
}

func (r *panelRepository) scanPanel(row *sql.Row) (*domain.Panel, error) {
	panel := &domain.Panel{}

	err := row.Scan(
		&panel.ID,
		&panel.Code,
		&panel.Municipality,
		&panel.Status,
		&panel.BaseRate,
		&panel.CreatedAt,
		&panel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return panel, nil
}
