package reporting

import (
	"context"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/utils"
)

func (s *Service) RevenueTrend(ctx context.Context, periodType domain.PeriodType, periods int) ([]domain.RevenuePeriod, error) {
	if err := s.validatePeriods(periods); err != nil {
		return nil, err
	}

	key := s.cacheKey(domain.ReportRevenueTrend, periodType, periods)
	return runReport(ctx, s, domain.ReportRevenueTrend, key, func() ([]domain.RevenuePeriod, error) {
		return s.revenueTrend(ctx, s.windows(ctx, periodType, periods))
	})
}

func (s *Service) revenueTrend(ctx context.Context, windows []domain.PeriodWindow) ([]domain.RevenuePeriod, error) {
	if len(windows) == 0 {
		return []domain.RevenuePeriod{}, nil
	}

	from := windows[0].Start
	before := windows[len(windows)-1].End
	txns, err := s.transactionRepository.ListTransactions(ctx, &domain.TransactionFilter{
		Statuses:     []domain.TransactionStatus{domain.TransactionStatusPaid},
		BilledFrom:   &from,
		BilledBefore: &before,
	})
	if err != nil {
		return nil, dataSourceError("transações da tendência de receita", err)
	}

	return aggregateRevenue(windows, txns), nil
}

// aggregateRevenue soma earnings das transações pagas com billed_at dentro de cada janela.
// Transação sem earnings conta na quantidade e contribui com zero.
func aggregateRevenue(windows []domain.PeriodWindow, txns []*domain.Transaction) []domain.RevenuePeriod {
	result := make([]domain.RevenuePeriod, 0, len(windows))

	for _, w := range windows {
		row := domain.RevenuePeriod{PeriodWindow: w}

		for _, txn := range txns {
			if txn.Status != domain.TransactionStatusPaid || !w.Contains(txn.BilledAt) {
				continue
			}
			row.TotalRevenue += txn.EarningsOrZero()
			row.NumTransactions++
		}

		if row.NumTransactions > 0 {
			row.AvgTransactionValue = utils.RoundWithTwoDecimalPlace(float64(row.TotalRevenue) / float64(row.NumTransactions))
		}

		result = append(result, row)
	}

	return result
}
