package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/subscription-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

const (
	subscriptionsTable  = "subscriptions s"
	subscriptionColumns = "s.id, s.customer_id, s.status, s.started_at, s.canceled_at, s.billing_interval, s.billing_frequency, " +
		"COALESCE(s.price_id, ''), COALESCE(s.glt_key, ''), COALESCE(s.group_id, ''), COALESCE(pg.number, 0), COALESCE(pg.name, ''), " +
		"COALESCE(s.level, 0), COALESCE(s.tier, ''), s.created_at, s.updated_at"
)

type SubscriptionRepository interface {
	ListSubscriptions(ctx context.Context, filter *domain.SubscriptionFilter) ([]*domain.Subscription, error)
	SaveOrUpdate(ctx context.Context, subscriptions []*domain.Subscription) error
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

func (r *subscriptionRepository) ListSubscriptions(ctx context.Context, filter *domain.SubscriptionFilter) ([]*domain.Subscription, error) {
	queryBuilder := squirrel.
		Select(subscriptionColumns).
		From(subscriptionsTable).
		LeftJoin("plan_groups pg ON pg.id = s.group_id").
		OrderBy("s.started_at ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		if filter.GroupID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"s.group_id": *filter.GroupID})
		}
		if filter.Level != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"s.level": *filter.Level})
		}
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar assinaturas: %w", err)
	}
	defer rows.Close()

	subscriptions := make([]*domain.Subscription, 0)
	for rows.Next() {
		sub, err := r.scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear assinatura: %w", err)
		}
		subscriptions = append(subscriptions, sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return subscriptions, nil
}

func (r *subscriptionRepository) scanSubscription(rows *sql.Rows) (*domain.Subscription, error) {
	var (
		sub        domain.Subscription
		startedAt  sql.NullTime
		canceledAt sql.NullTime
		interval   sql.NullString
		frequency  sql.NullInt64
	)

	if err := rows.Scan(
		&sub.ID,
		&sub.CustomerID,
		&sub.Status,
		&startedAt,
		&canceledAt,
		&interval,
		&frequency,
		&sub.PriceID,
		&sub.Plan.GLTKey,
		&sub.Plan.GroupID,
		&sub.Plan.GroupNumber,
		&sub.Plan.GroupName,
		&sub.Plan.Level,
		&sub.Plan.Tier,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sub.StartedAt = nullTimePtr(startedAt)
	sub.CanceledAt = nullTimePtr(canceledAt)
	sub.BillingInterval = interval.String
	sub.BillingFrequency = int(frequency.Int64)

	return &sub, nil
}

func (r *subscriptionRepository) SaveOrUpdate(ctx context.Context, subscriptions []*domain.Subscription) error {
	if len(subscriptions) == 0 {
		return nil
	}

	for _, batch := range chunk(subscriptions, batchSize) {
		query := squirrel.
			Insert("subscriptions").
			Columns("id", "customer_id", "status", "started_at", "canceled_at", "billing_interval", "billing_frequency",
				"price_id", "glt_key", "group_id", "level", "tier", "updated_at").
			PlaceholderFormat(squirrel.Dollar)

		now := time.Now().UTC()
		for _, sub := range batch {
			query = query.Values(
				sub.ID,
				sub.CustomerID,
				sub.Status,
				sub.StartedAt,
				sub.CanceledAt,
				sub.BillingInterval,
				sub.BillingFrequency,
				nullIfEmpty(sub.PriceID),
				nullIfEmpty(sub.Plan.GLTKey),
				nullIfEmpty(sub.Plan.GroupID),
				sub.Plan.Level,
				nullIfEmpty(sub.Plan.Tier),
				now,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				customer_id = EXCLUDED.customer_id,
				status = EXCLUDED.status,
				started_at = EXCLUDED.started_at,
				canceled_at = EXCLUDED.canceled_at,
				billing_interval = EXCLUDED.billing_interval,
				billing_frequency = EXCLUDED.billing_frequency,
				price_id = EXCLUDED.price_id,
				glt_key = EXCLUDED.glt_key,
				group_id = EXCLUDED.group_id,
				level = EXCLUDED.level,
				tier = EXCLUDED.tier,
				updated_at = EXCLUDED.updated_at
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao salvar assinaturas: %w", err)
		}
	}

	return nil
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
