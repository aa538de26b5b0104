package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

func TestService_ItemPerformance(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	m.lineItems.EXPECT().
		ListByTransactionStatus(gomock.Any(), []domain.TransactionStatus{domain.TransactionStatusPaid, domain.TransactionStatusCompleted}).
		Return([]*domain.TransactionLineItem{
			{ID: "li_1", TransactionID: "txn_1", CustomerID: "ctm_1", PriceID: "pri_course", Quantity: 1, Total: minor(500)},
			{ID: "li_2", TransactionID: "txn_2", CustomerID: "ctm_2", PriceID: "pri_course", Quantity: 2, Total: minor(1000)},
			{ID: "li_3", TransactionID: "txn_3", CustomerID: "ctm_1", PriceID: "pri_consult", Quantity: 1, Total: minor(2500)},
			{ID: "li_4", TransactionID: "txn_4", CustomerID: "ctm_3", PriceID: "pri_plan", Quantity: 1, Total: minor(9000)},
			{ID: "li_5", TransactionID: "txn_5", CustomerID: "ctm_3", PriceID: "pri_missing", Quantity: 1, Total: minor(100)},
			{ID: "li_6", TransactionID: "txn_6", CustomerID: "ctm_3", PriceID: "pri_orphan", Quantity: 1, Total: minor(100)},
		}, nil)
	m.catalog.EXPECT().ListPrices(gomock.Any()).Return([]*domain.Price{
		{ID: "pri_course", ItemID: "pro_course"},
		{ID: "pri_consult", ItemID: "pro_consult"},
		{ID: "pri_plan", ItemID: "pro_plan"},
		{ID: "pri_orphan", ItemID: "pro_deleted"},
	}, nil)
	m.catalog.EXPECT().ListItems(gomock.Any()).Return([]*domain.Item{
		{ID: "pro_course", Name: "Curso", Type: domain.ItemTypeProduct},
		{ID: "pro_consult", Name: "Consultoria", Type: domain.ItemTypeService},
		{ID: "pro_plan", Name: "Plano Pro", Type: domain.ItemTypeSubscription},
	}, nil)

	rows, err := svc.ItemPerformance(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "pro_consult", rows[0].ItemID)
	assert.Equal(t, int64(2500), rows[0].TotalRevenue)

	course := rows[1]
	assert.Equal(t, "pro_course", course.ItemID)
	assert.Equal(t, 3, course.UnitsSold)
	assert.Equal(t, int64(1500), course.TotalRevenue)
	assert.Equal(t, 2, course.CustomerCount)
	assert.Equal(t, int64(750), course.ARPU)

	services := FilterItemsByType(rows, domain.ItemTypeService)
	require.Len(t, services, 1)
	assert.Equal(t, "pro_consult", services[0].ItemID)
	assert.Len(t, FilterItemsByType(rows, ""), 2)
}

func TestAggregateItems_RoundsARPU(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	rows := svc.aggregateItems(context.Background(),
		[]*domain.TransactionLineItem{
			{ID: "li_1", CustomerID: "ctm_1", PriceID: "pri_1", Quantity: 1, Total: minor(100)},
			{ID: "li_2", CustomerID: "ctm_2", PriceID: "pri_1", Quantity: 1, Total: minor(100)},
			{ID: "li_3", CustomerID: "ctm_3", PriceID: "pri_1", Quantity: 1, Total: nil},
		},
		[]*domain.Price{{ID: "pri_1", ItemID: "pro_1"}},
		[]*domain.Item{{ID: "pro_1", Name: "Ebook", Type: domain.ItemTypeProduct}},
	)

	require.Len(t, rows, 1)
	assert.Equal(t, int64(200), rows[0].TotalRevenue)
	assert.Equal(t, 3, rows[0].CustomerCount)
	assert.Equal(t, int64(67), rows[0].ARPU)
}
