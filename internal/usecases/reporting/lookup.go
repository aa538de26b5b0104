package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

// TransactionLookup resolve as transações pagas de uma assinatura em torno de um instante
type TransactionLookup interface {
	// LatestPaid retorna a transação paga mais recente com billed_at <= atOrBefore
	LatestPaid(subscriptionID string, atOrBefore time.Time) *domain.Transaction
	// FirstPaid retorna a primeira transação paga com billed_at >= onOrAfter
	FirstPaid(subscriptionID string, onOrAfter time.Time) *domain.Transaction
}

// paidIndex mantém, por assinatura, as transações pagas ordenadas por billed_at
type paidIndex struct {
	bySubscription map[string][]*domain.Transaction
}

// NewTransactionLookup indexa as transações pagas com assinatura e billed_at preenchidos
func NewTransactionLookup(transactions []*domain.Transaction) TransactionLookup {
	idx := &paidIndex{bySubscription: make(map[string][]*domain.Transaction)}

	for _, txn := range transactions {
		if txn == nil || txn.Status != domain.TransactionStatusPaid || txn.SubscriptionID == nil || txn.BilledAt == nil {
			continue
		}
		idx.bySubscription[*txn.SubscriptionID] = append(idx.bySubscription[*txn.SubscriptionID], txn)
	}

	for _, list := range idx.bySubscription {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].BilledAt.Before(*list[j].BilledAt)
		})
	}

	return idx
}

func (p *paidIndex) LatestPaid(subscriptionID string, atOrBefore time.Time) *domain.Transaction {
	list := p.bySubscription[subscriptionID]
	// primeira posição com billed_at > atOrBefore
	i := sort.Search(len(list), func(i int) bool {
		return list[i].BilledAt.After(atOrBefore)
	})
	if i == 0 {
		return nil
	}
	return list[i-1]
}

func (p *paidIndex) FirstPaid(subscriptionID string, onOrAfter time.Time) *domain.Transaction {
	list := p.bySubscription[subscriptionID]
	i := sort.Search(len(list), func(i int) bool {
		return !list[i].BilledAt.Before(onOrAfter)
	})
	if i == len(list) {
		return nil
	}
	return list[i]
}
