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
	itemsTable   = "items i"
	pricesTable  = "prices p"
	priceColumns = "p.id, COALESCE(p.item_id, ''), COALESCE(p.description, ''), p.unit_amount, COALESCE(p.currency_code, ''), " +
		"COALESCE(p.billing_interval, ''), COALESCE(p.billing_frequency, 0), COALESCE(p.glt_key, ''), COALESCE(p.group_id, ''), " +
		"COALESCE(pg.number, 0), COALESCE(pg.name, ''), COALESCE(p.level, 0), COALESCE(p.tier, ''), p.created_at, p.updated_at"
)

type CatalogRepository interface {
	ListItems(ctx context.Context) ([]*domain.Item, error)
	ListPrices(ctx context.Context) ([]*domain.Price, error)
	SaveOrUpdateItems(ctx context.Context, items []*domain.Item) error
	SaveOrUpdatePrices(ctx context.Context, prices []*domain.Price) error
}

type catalogRepository struct {
	conn *postgres.Connection
}

func NewCatalogRepository(conn *postgres.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

func (r *catalogRepository) ListItems(ctx context.Context) ([]*domain.Item, error) {
	query, args, err := squirrel.
		Select("i.id, i.name, i.type, COALESCE(i.status, ''), i.created_at, i.updated_at").
		From(itemsTable).
		OrderBy("i.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens do catálogo: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Type, &item.Status, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear item do catálogo: %w", err)
		}
		items = append(items, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func (r *catalogRepository) ListPrices(ctx context.Context) ([]*domain.Price, error) {
	query, args, err := squirrel.
		Select(priceColumns).
		From(pricesTable).
		LeftJoin("plan_groups pg ON pg.id = p.group_id").
		OrderBy("p.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar preços: %w", err)
	}
	defer rows.Close()

	prices := make([]*domain.Price, 0)
	for rows.Next() {
		var (
			price      domain.Price
			unitAmount sql.NullString
		)

		if err := rows.Scan(
			&price.ID,
			&price.ItemID,
			&price.Description,
			&unitAmount,
			&price.CurrencyCode,
			&price.BillingInterval,
			&price.BillingFrequency,
			&price.Plan.GLTKey,
			&price.Plan.GroupID,
			&price.Plan.GroupNumber,
			&price.Plan.GroupName,
			&price.Plan.Level,
			&price.Plan.Tier,
			&price.CreatedAt,
			&price.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear preço: %w", err)
		}

		price.UnitAmount = parseMinorUnits(ctx, unitAmount, "unit_amount", price.ID)
		prices = append(prices, &price)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return prices, nil
}

func (r *catalogRepository) SaveOrUpdateItems(ctx context.Context, items []*domain.Item) error {
	if len(items) == 0 {
		return nil
	}

	for _, batch := range chunk(items, batchSize) {
		query := squirrel.
			Insert("items").
			Columns("id", "name", "type", "status", "updated_at").
			PlaceholderFormat(squirrel.Dollar)

		now := time.Now().UTC()
		for _, item := range batch {
			query = query.Values(item.ID, item.Name, item.Type, nullIfEmpty(item.Status), now)
		}

		query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				type = EXCLUDED.type,
				status = EXCLUDED.status,
				updated_at = EXCLUDED.updated_at
		`)

		sqlQuery, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("erro ao salvar itens do catálogo: %w", err)
		}
	}

	return nil
}

func (r *catalogRepository) SaveOrUpdatePrices(ctx context.Context, prices []*domain.Price) error {
	if len(prices) == 0 {
		return nil
	}

	for _, batch := range chunk(prices, batchSize) {
		query := squirrel.
			Insert("prices").
			Columns("id", "item_id", "description", "unit_amount", "currency_code", "billing_interval", "billing_frequency",
				"glt_key", "group_id", "level", "tier", "updated_at").
			PlaceholderFormat(squirrel.Dollar)

		now := time.Now().UTC()
		for _, price := range batch {
			query = query.Values(
				price.ID,
				nullIfEmpty(price.ItemID),
				price.Description,
				minorUnitsText(price.UnitAmount),
				price.CurrencyCode,
				nullIfEmpty(price.BillingInterval),
				price.BillingFrequency,
				nullIfEmpty(price.Plan.GLTKey),
				nullIfEmpty(price.Plan.GroupID),
				price.Plan.Level,
				nullIfEmpty(price.Plan.Tier),
				now,
			)
		}

		query = query.Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				item_id = EXCLUDED.item_id,
				description = EXCLUDED.description,
				unit_amount = EXCLUDED.unit_amount,
				currency_code = EXCLUDED.currency_code,
				billing_interval = EXCLUDED.billing_interval,
				billing_frequency = EXCLUDED.billing_frequency,
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
			return fmt.Errorf("erro ao salvar preços: %w", err)
		}
	}

	return nil
}
