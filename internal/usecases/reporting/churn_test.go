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

func TestAggregateChurn(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	windows := PeriodWindows(now, domain.PeriodMonth, 3)

	// ctm_1 tem duas assinaturas e cancela as duas em fevereiro: conta uma vez
	a1 := monthlySub(t, "sub_a1", "ctm_1", "2023-12-01T00:00:00Z")
	a1.CanceledAt = ts(t, "2024-02-10T00:00:00Z")
	a2 := monthlySub(t, "sub_a2", "ctm_1", "2023-12-05T00:00:00Z")
	a2.CanceledAt = ts(t, "2024-02-11T00:00:00Z")

	b := monthlySub(t, "sub_b", "ctm_2", "2023-11-01T00:00:00Z")
	c := monthlySub(t, "sub_c", "ctm_3", "2024-01-15T00:00:00Z")

	// cancelada exatamente no início de fevereiro: não está ativa nesse instante
	d := monthlySub(t, "sub_d", "ctm_4", "2023-10-01T00:00:00Z")
	d.CanceledAt = ts(t, "2024-02-01T00:00:00Z")

	rows := aggregateChurn(windows, []*domain.Subscription{a1, a2, b, c, d})
	require.Len(t, rows, 3)

	// janeiro: ctm_1, ctm_2 e ctm_4 ativos no início; ninguém cancela dentro de janeiro
	assert.Equal(t, 3, rows[0].StartingCustomers)
	assert.Equal(t, 0, rows[0].CanceledCustomers)
	assert.Equal(t, 0.0, rows[0].ChurnRatePercent)

	// fevereiro: ctm_1, ctm_2, ctm_3 no início; ctm_1 cancela
	assert.Equal(t, 3, rows[1].StartingCustomers)
	assert.Equal(t, 1, rows[1].CanceledCustomers)
	assert.Equal(t, 33.33, rows[1].ChurnRatePercent)

	// março: ctm_2 e ctm_3
	assert.Equal(t, 2, rows[2].StartingCustomers)
	assert.Equal(t, 0, rows[2].CanceledCustomers)
}

func TestAggregateChurn_NoStartingCustomers(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)

	sub := monthlySub(t, "sub_1", "ctm_1", "2024-03-02T00:00:00Z")
	sub.CanceledAt = ts(t, "2024-03-10T00:00:00Z")

	rows := aggregateChurn(PeriodWindows(now, domain.PeriodMonth, 1), []*domain.Subscription{sub})

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].StartingCustomers)
	assert.Equal(t, 0, rows[0].CanceledCustomers)
	assert.Equal(t, 0.0, rows[0].ChurnRatePercent)
}

func TestService_CustomerChurn(t *testing.T) {
	now := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	svc, m := newTestService(t, now)

	sub := monthlySub(t, "sub_1", "ctm_1", "2023-06-01T00:00:00Z")
	sub.CanceledAt = ts(t, "2024-03-03T00:00:00Z")

	m.subscriptions.EXPECT().ListSubscriptions(gomock.Any(), gomock.Any()).Return([]*domain.Subscription{sub}, nil)

	rows, err := svc.CustomerChurn(context.Background(), domain.PeriodQuarter, 2)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2023-Q4", rows[0].Label)
	assert.Equal(t, 0.0, rows[0].ChurnRatePercent)
	assert.Equal(t, "2024-Q1", rows[1].Label)
	assert.Equal(t, 100.0, rows[1].ChurnRatePercent)
}
