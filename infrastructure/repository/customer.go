package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/subscription-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

type CustomerRepository interface {
	SaveOrUpdate(ctx context.Context, customers []*domain.Customer) error
	CountCustomers(ctx context.Context) (int, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) SaveOrUpdate(ctx context.Context, customers []*domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}

	for _, batch := range chunk(customers, batchSize) {
		query := squirrel.
			Insert("customers").
			Columns("id", "name", "email", "status", "updated_at").
			PlaceholderFormat(squirrel.Dollar)

		now := time.Now().UTC()
		for _, customer := range batch {
			query = query.Values(customer.ID, customer.Name, customer.Email, customer.Status, now)
		}

		query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				email = EXCLUDED.email,
				status = EXCLUDED.status,
				updated_at = EXCLUDED.updated_at
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao salvar clientes: %w", err)
		}
	}

	return nil
}

func (r *customerRepository) CountCustomers(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("customers").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}
