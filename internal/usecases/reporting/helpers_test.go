package reporting

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vfg2006/subscription-reports-api/infrastructure/repository/mocks"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

type serviceMocks struct {
	subscriptions *mocks.MockSubscriptionRepository
	transactions  *mocks.MockTransactionRepository
	lineItems     *mocks.MockLineItemRepository
	catalog       *mocks.MockCatalogRepository
	planGroups    *mocks.MockPlanGroupRepository
	snapshots     *mocks.MockReportSnapshotRepository
}

func newTestService(t *testing.T, now time.Time, opts ...Option) (*Service, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		subscriptions: mocks.NewMockSubscriptionRepository(ctrl),
		transactions:  mocks.NewMockTransactionRepository(ctrl),
		lineItems:     mocks.NewMockLineItemRepository(ctrl),
		catalog:       mocks.NewMockCatalogRepository(ctrl),
		planGroups:    mocks.NewMockPlanGroupRepository(ctrl),
		snapshots:     mocks.NewMockReportSnapshotRepository(ctrl),
	}

	base := []Option{
		WithLogger(log.Discard()),
		WithClock(func() time.Time { return now }),
	}

	svc := NewService(m.subscriptions, m.transactions, m.lineItems, m.catalog, m.planGroups, m.snapshots, append(base, opts...)...)
	return svc, m
}

func ts(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("timestamp inválido %q: %v", value, err)
	}
	parsed = parsed.UTC()
	return &parsed
}

func minor(v int64) *int64 {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func paidTxn(t *testing.T, id, subscriptionID, customerID, billedAt string, earnings int64) *domain.Transaction {
	t.Helper()
	txn := &domain.Transaction{
		ID:         id,
		CustomerID: customerID,
		Status:     domain.TransactionStatusPaid,
		BilledAt:   ts(t, billedAt),
		Earnings:   minor(earnings),
	}
	if subscriptionID != "" {
		txn.SubscriptionID = strPtr(subscriptionID)
	}
	return txn
}

func monthlySub(t *testing.T, id, customerID, startedAt string) *domain.Subscription {
	t.Helper()
	return &domain.Subscription{
		ID:               id,
		CustomerID:       customerID,
		Status:           domain.SubscriptionStatusActive,
		StartedAt:        ts(t, startedAt),
		BillingInterval:  domain.IntervalMonth,
		BillingFrequency: 1,
	}
}
