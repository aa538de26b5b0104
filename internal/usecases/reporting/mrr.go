package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/utils"
)

func (s *Service) SubscriptionMRR(ctx context.Context, periodType domain.PeriodType, periods int) ([]domain.MRRPeriod, error) {
	if err := s.validatePeriods(periods); err != nil {
		return nil, err
	}

	key := s.cacheKey(domain.ReportSubscriptionMRR, periodType, periods)
	return runReport(ctx, s, domain.ReportSubscriptionMRR, key, func() ([]domain.MRRPeriod, error) {
		return s.subscriptionMRR(ctx, s.windows(ctx, periodType, periods))
	})
}

func (s *Service) subscriptionMRR(ctx context.Context, windows []domain.PeriodWindow) ([]domain.MRRPeriod, error) {
	if len(windows) == 0 {
		return []domain.MRRPeriod{}, nil
	}

	subs, err := s.loadSubscriptions(ctx, nil)
	if err != nil {
		return nil, err
	}

	lookup, err := s.loadPaidLookup(ctx)
	if err != nil {
		return nil, err
	}

	return aggregateMRR(windows, subs, lookup, s.normalizer), nil
}

// activeAtEnd indica se a assinatura conta como ativa no fechamento da janela:
// status ativo, iniciada antes de end e sem cancelamento antes de end
func activeAtEnd(sub *domain.Subscription, end time.Time) bool {
	if sub.Status != domain.SubscriptionStatusActive || sub.StartedAt == nil || !sub.StartedAt.Before(end) {
		return false
	}
	return sub.CanceledAt == nil || !sub.CanceledAt.Before(end)
}

type movement int

const (
	movementNone movement = iota
	movementNew
	movementChurn
)

// movementIn diz se a assinatura entrou ou saiu na janela. Início e cancelamento
// na mesma janela contam só como cancelamento.
func movementIn(w domain.PeriodWindow, sub *domain.Subscription) movement {
	switch {
	case w.Contains(sub.CanceledAt):
		return movementChurn
	case w.Contains(sub.StartedAt):
		return movementNew
	default:
		return movementNone
	}
}

// monthlyFrom normaliza earnings da transação pelo ciclo da assinatura. Sem transação, zero.
func monthlyFrom(n *Normalizer, txn *domain.Transaction, sub *domain.Subscription) float64 {
	if txn == nil {
		return 0
	}
	return n.ToMonthly(txn.Earnings, sub.BillingInterval, sub.BillingFrequency)
}

// aggregateMRR calcula MRR estimado, novo e perdido de cada janela. Cada valor vem de
// uma consulta independente por assinatura, nunca da diferença entre agregados.
func aggregateMRR(windows []domain.PeriodWindow, subs []*domain.Subscription, lookup TransactionLookup, n *Normalizer) []domain.MRRPeriod {
	result := make([]domain.MRRPeriod, 0, len(windows))

	for _, w := range windows {
		row := domain.MRRPeriod{PeriodWindow: w}
		var estimated, newMRR, churnMRR float64

		for _, sub := range subs {
			if activeAtEnd(sub, w.End) {
				row.ActiveSubs++
				estimated += monthlyFrom(n, lookup.LatestPaid(sub.ID, w.End), sub)
			}

			switch movementIn(w, sub) {
			case movementNew:
				row.NewSubs++
				newMRR += monthlyFrom(n, lookup.FirstPaid(sub.ID, *sub.StartedAt), sub)
			case movementChurn:
				row.CanceledSubs++
				churnMRR += monthlyFrom(n, lookup.LatestPaid(sub.ID, *sub.CanceledAt), sub)
			}
		}

		row.EstimatedMRR = utils.MinorToMajor(estimated)
		row.NewMRR = utils.MinorToMajor(newMRR)
		row.ChurnMRR = utils.MinorToMajor(churnMRR)

		result = append(result, row)
	}

	return result
}
