package paddle

import (
	"context"
	"strings"

	paddledomain "github.com/vfg2006/subscription-reports-api/infrastructure/integrator/paddle/domain"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
	"github.com/vfg2006/subscription-reports-api/pkg/utils"
)

// Chaves de custom_data usadas na classificação de planos e no tipo do item
const (
	customDataGLT         = "glt"
	customDataGroupID     = "group_id"
	customDataGroupNumber = "group_number"
	customDataGroupName   = "group_name"
	customDataLevel       = "level"
	customDataTier        = "tier"
	customDataItemType    = "item_type"
)

// FactoryItem converte um produto do Paddle em item do catálogo
func FactoryItem(p paddledomain.Product) *domain.Item {
	return &domain.Item{
		ID:        p.ID,
		Name:      p.Name,
		Type:      itemType(p),
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// itemType lê o tipo em custom_data.item_type e, na ausência, deriva da categoria fiscal
func itemType(p paddledomain.Product) domain.ItemType {
	switch t := domain.ItemType(strings.ToLower(p.CustomData.String(customDataItemType))); t {
	case domain.ItemTypeProduct, domain.ItemTypeService, domain.ItemTypeSubscription, domain.ItemTypeAddon:
		return t
	}

	switch p.TaxCategory {
	case "saas":
		return domain.ItemTypeSubscription
	case "professional-services", "training-services":
		return domain.ItemTypeService
	default:
		return domain.ItemTypeProduct
	}
}

// FactoryPlanClassification monta a classificação Grupo/Nível/Tier a partir do custom_data do preço
func FactoryPlanClassification(data paddledomain.CustomData) domain.PlanClassification {
	plan := domain.PlanClassification{
		GLTKey:    data.String(customDataGLT),
		GroupID:   data.String(customDataGroupID),
		GroupName: data.String(customDataGroupName),
		Tier:      data.String(customDataTier),
	}

	if n, ok := data.Int(customDataGroupNumber); ok {
		plan.GroupNumber = n
	}
	if n, ok := data.Int(customDataLevel); ok {
		plan.Level = n
	}

	return plan
}

func FactoryPrice(ctx context.Context, p paddledomain.Price) *domain.Price {
	amount, err := utils.ParseOptionalMinorUnits(p.UnitPrice.Amount)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"price_id": p.ID,
			"error":    err.Error(),
		}).Warn("paddle: unit_price inválido, preço salvo sem valor")
	}

	price := &domain.Price{
		ID:           p.ID,
		ItemID:       p.ProductID,
		Description:  p.Description,
		UnitAmount:   amount,
		CurrencyCode: p.UnitPrice.CurrencyCode,
		Plan:         FactoryPlanClassification(p.CustomData),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}

	if p.BillingCycle != nil {
		price.BillingInterval = p.BillingCycle.Interval
		price.BillingFrequency = p.BillingCycle.Frequency
	}

	return price
}

// FactoryPlanGroups extrai os grupos de plano distintos referenciados pelos preços
func FactoryPlanGroups(prices []*domain.Price) []*domain.PlanGroup {
	seen := make(map[string]*domain.PlanGroup)
	var groups []*domain.PlanGroup

	for _, price := range prices {
		if price.Plan.GroupID == "" {
			continue
		}

		if group, ok := seen[price.Plan.GroupID]; ok {
			if group.Name == "" {
				group.Name = price.Plan.GroupName
			}
			continue
		}

		group := &domain.PlanGroup{
			ID:     price.Plan.GroupID,
			Number: price.Plan.GroupNumber,
			Name:   price.Plan.GroupName,
		}
		seen[group.ID] = group
		groups = append(groups, group)
	}

	return groups
}

func FactoryCustomer(c paddledomain.Customer) *domain.Customer {
	customer := &domain.Customer{
		ID:        c.ID,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.Name != nil {
		customer.Name = *c.Name
	}

	return customer
}

// FactorySubscription converte uma assinatura do Paddle. O plano vem do primeiro
// item recorrente; quando o item não traz custom_data, usa o preço já sincronizado.
func FactorySubscription(s paddledomain.Subscription, prices map[string]*domain.Price) *domain.Subscription {
	sub := &domain.Subscription{
		ID:               s.ID,
		CustomerID:       s.CustomerID,
		Status:           domain.SubscriptionStatus(s.Status),
		StartedAt:        s.StartedAt,
		CanceledAt:       s.CanceledAt,
		BillingInterval:  s.BillingCycle.Interval,
		BillingFrequency: s.BillingCycle.Frequency,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}

	item, ok := primaryItem(s.Items)
	if !ok {
		return sub
	}

	sub.PriceID = item.Price.ID
	if len(item.Price.CustomData) > 0 {
		sub.Plan = FactoryPlanClassification(item.Price.CustomData)
	} else if price, ok := prices[item.Price.ID]; ok {
		sub.Plan = price.Plan
	}

	return sub
}

func primaryItem(items []paddledomain.SubscriptionItem) (paddledomain.SubscriptionItem, bool) {
	for _, item := range items {
		if item.Price.BillingCycle != nil {
			return item, true
		}
	}

	if len(items) > 0 {
		return items[0], true
	}

	return paddledomain.SubscriptionItem{}, false
}

// FactoryTransaction converte uma transação e seus itens. Valores monetários
// inválidos são gravados como nulos.
func FactoryTransaction(ctx context.Context, t paddledomain.Transaction) (*domain.Transaction, []*domain.TransactionLineItem) {
	logger := log.ForContext(ctx).WithField("transaction_id", t.ID)

	txn := &domain.Transaction{
		ID:             t.ID,
		SubscriptionID: t.SubscriptionID,
		Status:         domain.TransactionStatus(t.Status),
		BilledAt:       t.BilledAt,
		CurrencyCode:   t.CurrencyCode,
		Earnings:       parseAmount(logger, t.Details.Totals.Earnings, "earnings"),
		Total:          parseAmount(logger, t.Details.Totals.Total, "total"),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}

	if t.CustomerID != nil {
		txn.CustomerID = *t.CustomerID
	}

	items := make([]*domain.TransactionLineItem, 0, len(t.Details.LineItems))
	for _, li := range t.Details.LineItems {
		items = append(items, &domain.TransactionLineItem{
			ID:            li.ID,
			TransactionID: t.ID,
			CustomerID:    txn.CustomerID,
			PriceID:       li.PriceID,
			Quantity:      li.Quantity,
			Total:         parseAmount(logger, li.Totals.Total, "line_item_total"),
			CreatedAt:     t.CreatedAt,
		})
	}

	return txn, items
}

func parseAmount(logger log.Logger, raw *string, field string) *int64 {
	amount, err := utils.ParseOptionalMinorUnits(raw)
	if err != nil {
		logger.WithFields(log.Fields{
			"field": field,
			"error": err.Error(),
		}).Warn("paddle: valor monetário inválido, gravado como nulo")
		return nil
	}

	return amount
}
