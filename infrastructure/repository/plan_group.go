package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/subscription-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

type PlanGroupRepository interface {
	GetPlanGroupByID(ctx context.Context, id string) (*domain.PlanGroup, error)
	ListPlanGroups(ctx context.Context) ([]*domain.PlanGroup, error)
	SaveOrUpdate(ctx context.Context, groups []*domain.PlanGroup) error
}

type planGroupRepository struct {
	conn *postgres.Connection
}

func NewPlanGroupRepository(conn *postgres.Connection) PlanGroupRepository {
	return &planGroupRepository{
		conn: conn,
	}
}

// GetPlanGroupByID retorna nil, nil quando o grupo não existe
func (r *planGroupRepository) GetPlanGroupByID(ctx context.Context, id string) (*domain.PlanGroup, error) {
	query, args, err := squirrel.
		Select("pg.id, pg.number, pg.name").
		From("plan_groups pg").
		Where(squirrel.Eq{"pg.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var group domain.PlanGroup
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&group.ID, &group.Number, &group.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar grupo de planos: %w", err)
	}

	return &group, nil
}

func (r *planGroupRepository) ListPlanGroups(ctx context.Context) ([]*domain.PlanGroup, error) {
	query, args, err := squirrel.
		Select("pg.id, pg.number, pg.name").
		From("plan_groups pg").
		OrderBy("pg.number ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar grupos de planos: %w", err)
	}
	defer rows.Close()

	groups := make([]*domain.PlanGroup, 0)
	for rows.Next() {
		var group domain.PlanGroup
		if err := rows.Scan(&group.ID, &group.Number, &group.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo de planos: %w", err)
		}
		groups = append(groups, &group)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return groups, nil
}

func (r *planGroupRepository) SaveOrUpdate(ctx context.Context, groups []*domain.PlanGroup) error {
	if len(groups) == 0 {
		return nil
	}

	query := squirrel.
		Insert("plan_groups").
		Columns("id", "number", "name").
		PlaceholderFormat(squirrel.Dollar)

	for _, group := range groups {
		query = query.Values(group.ID, group.Number, group.Name)
	}

	query = query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			number = EXCLUDED.number,
			name = CASE WHEN EXCLUDED.name = '' THEN plan_groups.name ELSE EXCLUDED.name END
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao salvar grupos de planos: %w", err)
	}

	return nil
}
