package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/subscription-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

const (
	transactionsTable  = "transactions t"
	transactionColumns = "t.id, t.subscription_id, t.customer_id, t.status, t.billed_at, t.earnings, t.total, " +
		"COALESCE(t.currency_code, ''), t.created_at, t.updated_at"
)

type TransactionRepository interface {
	ListTransactions(ctx context.Context, filter *domain.TransactionFilter) ([]*domain.Transaction, error)
	SaveOrUpdate(ctx context.Context, transactions []*domain.Transaction) error
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// ListTransactions retorna as transações ordenadas por billed_at crescente
func (r *transactionRepository) ListTransactions(ctx context.Context, filter *domain.TransactionFilter) ([]*domain.Transaction, error) {
	queryBuilder := squirrel.
		Select(transactionColumns).
		From(transactionsTable).
		OrderBy("t.billed_at ASC NULLS FIRST", "t.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if len(filter.Statuses) > 0 {
			statuses := make([]string, 0, len(filter.Statuses))
			for _, s := range filter.Statuses {
				statuses = append(statuses, string(s))
			}
			queryBuilder = queryBuilder.Where("t.status = ANY(?)", pq.Array(statuses))
		}
		if filter.BilledFrom != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"t.billed_at": *filter.BilledFrom})
		}
		if filter.BilledBefore != nil {
			queryBuilder = queryBuilder.Where(squirrel.Lt{"t.billed_at": *filter.BilledBefore})
		}
		if filter.OnlyWithSubscription {
			queryBuilder = queryBuilder.Where(squirrel.NotEq{"t.subscription_id": nil})
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar transações: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		txn, err := r.scanTransaction(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, txn)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) scanTransaction(ctx context.Context, rows *sql.Rows) (*domain.Transaction, error) {
	var (
		txn            domain.Transaction
		subscriptionID sql.NullString
		billedAt       sql.NullTime
		earnings       sql.NullString
		total          sql.NullString
	)

	if err := rows.Scan(
		&txn.ID,
		&subscriptionID,
		&txn.CustomerID,
		&txn.Status,
		&billedAt,
		&earnings,
		&total,
		&txn.CurrencyCode,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	); err != nil {
		return nil, err
	}

	txn.SubscriptionID = nullStringPtr(subscriptionID)
	txn.BilledAt = nullTimePtr(billedAt)
	txn.Earnings = parseMinorUnits(ctx, earnings, "earnings", txn.ID)
	txn.Total = parseMinorUnits(ctx, total, "total", txn.ID)

	return &txn, nil
}

func (r *transactionRepository) SaveOrUpdate(ctx context.Context, transactions []*domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	for _, batch := range chunk(transactions, batchSize) {
		query := squirrel.
			Insert("transactions").
			Columns("id", "subscription_id", "customer_id", "status", "billed_at", "earnings", "total", "currency_code", "updated_at").
			PlaceholderFormat(squirrel.Dollar)

		now := time.Now().UTC()
		for _, txn := range batch {
			query = query.Values(
				txn.ID,
				txn.SubscriptionID,
				txn.CustomerID,
				txn.Status,
				txn.BilledAt,
				minorUnitsText(txn.Earnings),
				minorUnitsText(txn.Total),
				txn.CurrencyCode,
				now,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				subscription_id = EXCLUDED.subscription_id,
				customer_id = EXCLUDED.customer_id,
				status = EXCLUDED.status,
				billed_at = EXCLUDED.billed_at,
				earnings = EXCLUDED.earnings,
				total = EXCLUDED.total,
				currency_code = EXCLUDED.currency_code,
				updated_at = EXCLUDED.updated_at
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao salvar transações: %w", err)
		}
	}

	return nil
}
