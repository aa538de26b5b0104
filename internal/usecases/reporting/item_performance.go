package reporting

import (
	"context"
	"math"
	"sort"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

type itemAccumulator struct {
	item      *domain.Item
	revenue   int64
	units     int
	customers map[string]struct{}
}

func (s *Service) ItemPerformance(ctx context.Context) ([]domain.ItemPerformance, error) {
	return runReport(ctx, s, domain.ReportItemPerformance, s.cacheKey(domain.ReportItemPerformance), func() ([]domain.ItemPerformance, error) {
		return s.itemPerformance(ctx)
	})
}

func (s *Service) itemPerformance(ctx context.Context) ([]domain.ItemPerformance, error) {
	lineItems, err := s.lineItemRepository.ListByTransactionStatus(ctx, []domain.TransactionStatus{
		domain.TransactionStatusPaid,
		domain.TransactionStatusCompleted,
	})
	if err != nil {
		return nil, dataSourceError("itens de transação", err)
	}

	prices, err := s.catalogRepository.ListPrices(ctx)
	if err != nil {
		return nil, dataSourceError("preços", err)
	}

	items, err := s.catalogRepository.ListItems(ctx)
	if err != nil {
		return nil, dataSourceError("itens do catálogo", err)
	}

	return s.aggregateItems(ctx, lineItems, prices, items), nil
}

// aggregateItems resolve cada item de transação até o item do catálogo pelo preço.
// Links ausentes são ignorados com aviso e tipos não rastreados são descartados.
func (s *Service) aggregateItems(ctx context.Context, lineItems []*domain.TransactionLineItem, prices []*domain.Price, items []*domain.Item) []domain.ItemPerformance {
	logger := s.logger.WithContext(ctx)

	priceByID := make(map[string]*domain.Price, len(prices))
	for _, p := range prices {
		priceByID[p.ID] = p
	}

	itemByID := make(map[string]*domain.Item, len(items))
	for _, i := range items {
		itemByID[i.ID] = i
	}

	accumulators := make(map[string]*itemAccumulator)
	for _, li := range lineItems {
		price, ok := priceByID[li.PriceID]
		if !ok {
			logger.WithFields(log.Fields{"line_item_id": li.ID, "price_id": li.PriceID}).Warn("Item de transação sem preço, ignorado")
			continue
		}

		item, ok := itemByID[price.ItemID]
		if !ok {
			logger.WithFields(log.Fields{"line_item_id": li.ID, "price_id": price.ID, "item_id": price.ItemID}).Warn("Preço sem item do catálogo, ignorado")
			continue
		}

		if !item.Type.IsTracked() {
			continue
		}

		acc, ok := accumulators[item.ID]
		if !ok {
			acc = &itemAccumulator{item: item, customers: make(map[string]struct{})}
			accumulators[item.ID] = acc
		}

		if li.Total != nil {
			acc.revenue += *li.Total
		}
		acc.units += li.Quantity
		if li.CustomerID != "" {
			acc.customers[li.CustomerID] = struct{}{}
		}
	}

	result := make([]domain.ItemPerformance, 0, len(accumulators))
	for _, acc := range accumulators {
		row := domain.ItemPerformance{
			ItemID:        acc.item.ID,
			ItemName:      acc.item.Name,
			ItemType:      acc.item.Type,
			TotalRevenue:  acc.revenue,
			UnitsSold:     acc.units,
			CustomerCount: len(acc.customers),
		}
		if row.CustomerCount > 0 {
			row.ARPU = int64(math.Round(float64(row.TotalRevenue) / float64(row.CustomerCount)))
		}
		result = append(result, row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].TotalRevenue != result[j].TotalRevenue {
			return result[i].TotalRevenue > result[j].TotalRevenue
		}
		return result[i].ItemID < result[j].ItemID
	})

	return result
}

// FilterItemsByType aplica o filtro de tipo sobre o resultado já ordenado
func FilterItemsByType(rows []domain.ItemPerformance, itemType domain.ItemType) []domain.ItemPerformance {
	if itemType == "" {
		return rows
	}

	filtered := make([]domain.ItemPerformance, 0, len(rows))
	for _, row := range rows {
		if row.ItemType == itemType {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
