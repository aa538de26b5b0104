package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/subscription-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

type LineItemRepository interface {
	ListByTransactionStatus(ctx context.Context, statuses []domain.TransactionStatus) ([]*domain.TransactionLineItem, error)
	SaveOrUpdate(ctx context.Context, items []*domain.TransactionLineItem) error
}

type lineItemRepository struct {
	conn *postgres.Connection
}

func NewLineItemRepository(conn *postgres.Connection) LineItemRepository {
	return &lineItemRepository{
		conn: conn,
	}
}

// ListByTransactionStatus retorna os itens das transações com os status informados,
// já com o cliente da transação
func (r *lineItemRepository) ListByTransactionStatus(ctx context.Context, statuses []domain.TransactionStatus) ([]*domain.TransactionLineItem, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	query, args, err := squirrel.
		Select("li.id, li.transaction_id, t.customer_id, COALESCE(li.price_id, ''), li.quantity, li.total, li.created_at").
		From("transaction_line_items li").
		Join("transactions t ON t.id = li.transaction_id").
		Where("t.status = ANY(?)", pq.Array(values)).
		OrderBy("li.created_at ASC", "li.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens de transação: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.TransactionLineItem, 0)
	for rows.Next() {
		var (
			item     domain.TransactionLineItem
			quantity sql.NullInt64
			total    sql.NullString
		)

		if err := rows.Scan(
			&item.ID,
			&item.TransactionID,
			&item.CustomerID,
			&item.PriceID,
			&quantity,
			&total,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear item de transação: %w", err)
		}

		item.Quantity = int(quantity.Int64)
		item.Total = parseMinorUnits(ctx, total, "line_item_total", item.ID)
		items = append(items, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *lineItemRepository) SaveOrUpdate(ctx context.Context, items []*domain.TransactionLineItem) error {
	if len(items) == 0 {
		return nil
	}

	for _, batch := range chunk(items, batchSize) {
		query := squirrel.
			Insert("transaction_line_items").
			Columns("id", "transaction_id", "price_id", "quantity", "total").
			PlaceholderFormat(squirrel.Dollar)

		for _, item := range batch {
			query = query.Values(
				item.ID,
				item.TransactionID,
				nullIfEmpty(item.PriceID),
				item.Quantity,
				minorUnitsText(item.Total),
			)
		}

		query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				transaction_id = EXCLUDED.transaction_id,
				price_id = EXCLUDED.price_id,
				quantity = EXCLUDED.quantity,
				total = EXCLUDED.total
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao salvar itens de transação: %w", err)
		}
	}

	return nil
}
