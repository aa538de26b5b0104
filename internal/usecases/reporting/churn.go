package reporting

import (
	"context"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/utils"
)

func (s *Service) CustomerChurn(ctx context.Context, periodType domain.PeriodType, periods int) ([]domain.ChurnPeriod, error) {
	if err := s.validatePeriods(periods); err != nil {
		return nil, err
	}

	key := s.cacheKey(domain.ReportCustomerChurn, periodType, periods)
	return runReport(ctx, s, domain.ReportCustomerChurn, key, func() ([]domain.ChurnPeriod, error) {
		return s.customerChurn(ctx, s.windows(ctx, periodType, periods))
	})
}

func (s *Service) customerChurn(ctx context.Context, windows []domain.PeriodWindow) ([]domain.ChurnPeriod, error) {
	if len(windows) == 0 {
		return []domain.ChurnPeriod{}, nil
	}

	subs, err := s.loadSubscriptions(ctx, nil)
	if err != nil {
		return nil, err
	}

	return aggregateChurn(windows, subs), nil
}

// aggregateChurn conta clientes distintos com assinatura ativa no início da janela
// e, entre eles, os que tiveram uma dessas assinaturas cancelada dentro da janela
func aggregateChurn(windows []domain.PeriodWindow, subs []*domain.Subscription) []domain.ChurnPeriod {
	result := make([]domain.ChurnPeriod, 0, len(windows))

	for _, w := range windows {
		starting := make(map[string]struct{})
		canceled := make(map[string]struct{})

		for _, sub := range subs {
			if !sub.ActiveAt(w.Start) {
				continue
			}
			starting[sub.CustomerID] = struct{}{}
			if w.Contains(sub.CanceledAt) {
				canceled[sub.CustomerID] = struct{}{}
			}
		}

		row := domain.ChurnPeriod{
			PeriodWindow:      w,
			StartingCustomers: len(starting),
			CanceledCustomers: len(canceled),
		}
		if row.StartingCustomers > 0 {
			row.ChurnRatePercent = utils.RoundWithTwoDecimalPlace(float64(row.CanceledCustomers) / float64(row.StartingCustomers) * 100)
		}

		result = append(result, row)
	}

	return result
}
