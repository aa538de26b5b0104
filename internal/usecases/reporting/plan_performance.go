package reporting

import (
	"context"
	"sort"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
	"github.com/vfg2006/subscription-reports-api/pkg/utils"
)

// Tiers até este número são gratuitos e não entram no MRR
const freeTier = 1

func (s *Service) PlanPerformance(ctx context.Context, req domain.PlanPerformanceRequest) (*domain.PlanPerformanceReport, error) {
	if err := s.validatePeriods(req.Periods); err != nil {
		return nil, err
	}

	key := s.cacheKey(domain.ReportPlanPerformance, req.PeriodType, req.Periods, derefOr(req.FilterGroupID, "*"), derefOr(req.FilterLevel, -1))
	return runReport(ctx, s, domain.ReportPlanPerformance, key, func() (*domain.PlanPerformanceReport, error) {
		return s.planPerformance(ctx, req)
	})
}

func (s *Service) planPerformance(ctx context.Context, req domain.PlanPerformanceRequest) (*domain.PlanPerformanceReport, error) {
	if req.FilterGroupID != nil {
		group, err := s.planGroupRepository.GetPlanGroupByID(ctx, *req.FilterGroupID)
		if err != nil {
			return nil, dataSourceError("grupo de planos", err)
		}
		if group == nil {
			s.logger.WithContext(ctx).WithField("group_id", *req.FilterGroupID).Info("Grupo de planos não encontrado, relatório vazio")
			return emptyPlanReport(), nil
		}
	}

	subs, err := s.loadSubscriptions(ctx, &domain.SubscriptionFilter{
		GroupID: req.FilterGroupID,
		Level:   req.FilterLevel,
	})
	if err != nil {
		return nil, err
	}

	lookup, err := s.loadPaidLookup(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var windows []domain.PeriodWindow
	if req.Periods == 0 {
		current := s.currentWindow(ctx, req.PeriodType)
		windows = []domain.PeriodWindow{{Label: current.Label, Start: current.Start, End: now}}
	} else {
		windows = s.windows(ctx, req.PeriodType, req.Periods)
	}

	return s.aggregatePlans(windows, filterSubscriptions(subs, req), lookup, req.Periods > 0), nil
}

func emptyPlanReport() *domain.PlanPerformanceReport {
	return &domain.PlanPerformanceReport{Details: []*domain.PlanMetrics{}}
}

// filterSubscriptions aplica os filtros de grupo e nível antes do agrupamento
func filterSubscriptions(subs []*domain.Subscription, req domain.PlanPerformanceRequest) []*domain.Subscription {
	if req.FilterGroupID == nil && req.FilterLevel == nil {
		return subs
	}

	filtered := make([]*domain.Subscription, 0, len(subs))
	for _, sub := range subs {
		if req.FilterGroupID != nil && sub.Plan.GroupID != *req.FilterGroupID {
			continue
		}
		if req.FilterLevel != nil && sub.Plan.Level != *req.FilterLevel {
			continue
		}
		filtered = append(filtered, sub)
	}
	return filtered
}

// payingTier indica se o tier da assinatura contribui para o MRR
func (s *Service) payingTier(sub *domain.Subscription) bool {
	tier, err := sub.Plan.TierNumber()
	if err != nil {
		s.logger.WithFields(log.Fields{
			"subscription_id": sub.ID,
			"tier":            sub.Plan.Tier,
		}).Warn("Tier sem número, assinatura tratada como não pagante")
		return false
	}
	return tier > freeTier
}

func (s *Service) bucketsFor(w domain.PeriodWindow, subs []*domain.Subscription, lookup TransactionLookup) map[string]*domain.PlanMetrics {
	buckets := make(map[string]*domain.PlanMetrics)

	bucket := func(sub *domain.Subscription) *domain.PlanMetrics {
		key := sub.Plan.Key()
		b, ok := buckets[key]
		if !ok {
			b = &domain.PlanMetrics{
				GLTKey:      key,
				GroupID:     sub.Plan.GroupID,
				GroupNumber: sub.Plan.GroupNumber,
				GroupName:   sub.Plan.GroupName,
				Level:       sub.Plan.Level,
				Tier:        sub.Plan.Tier,
			}
			buckets[key] = b
		}
		return b
	}

	mrrMinor := make(map[string]float64)
	for _, sub := range subs {
		if activeAtEnd(sub, w.End) {
			b := bucket(sub)
			b.ActiveSubs++
			if s.payingTier(sub) {
				mrrMinor[b.GLTKey] += monthlyFrom(s.normalizer, lookup.LatestPaid(sub.ID, w.End), sub)
			}
		}
		switch movementIn(w, sub) {
		case movementNew:
			bucket(sub).NewSubs++
		case movementChurn:
			bucket(sub).CanceledSubs++
		}
	}

	for key, minor := range mrrMinor {
		buckets[key].MRR = utils.MinorToMajor(minor)
	}

	return buckets
}

func (s *Service) aggregatePlans(windows []domain.PeriodWindow, subs []*domain.Subscription, lookup TransactionLookup, trend bool) *domain.PlanPerformanceReport {
	report := emptyPlanReport()
	if len(windows) == 0 {
		return report
	}

	var latest map[string]*domain.PlanMetrics
	for _, w := range windows {
		buckets := s.bucketsFor(w, subs, lookup)

		if trend {
			point := domain.PlanTrendPoint{PeriodWindow: w}
			var mrr float64
			for _, b := range buckets {
				point.TotalActiveSubs += b.ActiveSubs
				mrr += b.MRR
			}
			point.TotalMRR = utils.RoundWithTwoDecimalPlace(mrr)
			report.TrendData = append(report.TrendData, point)
		}

		latest = buckets
	}

	var totalMRR float64
	for _, b := range latest {
		report.Details = append(report.Details, b)
		report.TotalActiveSubs += b.ActiveSubs
		totalMRR += b.MRR
	}
	report.TotalMRR = utils.RoundWithTwoDecimalPlace(totalMRR)

	sort.Slice(report.Details, func(i, j int) bool {
		return report.Details[i].GLTKey < report.Details[j].GLTKey
	})

	return report
}

func derefOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
