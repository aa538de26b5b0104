package paddle

import (
	"context"
	"time"

	"github.com/vfg2006/subscription-reports-api/infrastructure/integrator/paddle/paddleclient"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

// Catalog agrupa o que é sincronizado a partir de produtos e preços
type Catalog struct {
	Items      []*domain.Item
	Prices     []*domain.Price
	PlanGroups []*domain.PlanGroup
}

type PaddleIntegrator interface {
	GetCatalog(ctx context.Context) (*Catalog, error)
	GetCustomers(ctx context.Context) ([]*domain.Customer, error)
	GetSubscriptions(ctx context.Context, prices []*domain.Price) ([]*domain.Subscription, error)
	GetTransactions(ctx context.Context, updatedSince time.Time) ([]*domain.Transaction, []*domain.TransactionLineItem, error)
}

type PaddleService struct {
	Client paddleclient.Client
}

func New(client paddleclient.Client) PaddleIntegrator {
	return &PaddleService{
		Client: client,
	}
}

func (s *PaddleService) GetCatalog(ctx context.Context) (*Catalog, error) {
	products, err := s.Client.ListProducts(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("paddle: failed to list products")
		return nil, err
	}

	prices, err := s.Client.ListPrices(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("paddle: failed to list prices")
		return nil, err
	}

	catalog := &Catalog{
		Items:  make([]*domain.Item, 0, len(products)),
		Prices: make([]*domain.Price, 0, len(prices)),
	}

	for _, p := range products {
		catalog.Items = append(catalog.Items, FactoryItem(p))
	}
	for _, p := range prices {
		catalog.Prices = append(catalog.Prices, FactoryPrice(ctx, p))
	}
	catalog.PlanGroups = FactoryPlanGroups(catalog.Prices)

	log.ForContext(ctx).WithFields(log.Fields{
		"items":       len(catalog.Items),
		"prices":      len(catalog.Prices),
		"plan_groups": len(catalog.PlanGroups),
	}).Debug("paddle: catalog retrieved")

	return catalog, nil
}

func (s *PaddleService) GetCustomers(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.Client.ListCustomers(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("paddle: failed to list customers")
		return nil, err
	}

	result := make([]*domain.Customer, 0, len(customers))
	for _, c := range customers {
		result = append(result, FactoryCustomer(c))
	}

	return result, nil
}

// GetSubscriptions usa os preços já convertidos para completar a classificação
// de assinaturas cujo item não traz custom_data
func (s *PaddleService) GetSubscriptions(ctx context.Context, prices []*domain.Price) ([]*domain.Subscription, error) {
	subscriptions, err := s.Client.ListSubscriptions(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("paddle: failed to list subscriptions")
		return nil, err
	}

	byID := make(map[string]*domain.Price, len(prices))
	for _, p := range prices {
		byID[p.ID] = p
	}

	result := make([]*domain.Subscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		result = append(result, FactorySubscription(sub, byID))
	}

	return result, nil
}

func (s *PaddleService) GetTransactions(ctx context.Context, updatedSince time.Time) ([]*domain.Transaction, []*domain.TransactionLineItem, error) {
	transactions, err := s.Client.ListTransactions(ctx, updatedSince)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("paddle: failed to list transactions")
		return nil, nil, err
	}

	txns := make([]*domain.Transaction, 0, len(transactions))
	var lineItems []*domain.TransactionLineItem

	for _, t := range transactions {
		txn, items := FactoryTransaction(ctx, t)
		txns = append(txns, txn)
		lineItems = append(lineItems, items...)
	}

	return txns, lineItems, nil
}
