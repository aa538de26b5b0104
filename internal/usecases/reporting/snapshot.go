package reporting

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var snapshotReports = []string{
	domain.ReportRevenueTrend,
	domain.ReportSubscriptionMRR,
	domain.ReportCustomerChurn,
}

// SaveMonthlySnapshots calcula os relatórios mensais do mês informado e grava um snapshot
// por relatório. Os três relatórios rodam em paralelo, pois cada um só lê a base.
func (s *Service) SaveMonthlySnapshots(ctx context.Context, month time.Time) error {
	window := PeriodBounds(month, domain.PeriodMonth, 0)
	if !window.End.After(window.Start) || window.End.After(s.now()) {
		return invalidRequest("o mês %s ainda não foi encerrado", window.Label)
	}

	windows := []domain.PeriodWindow{window}
	logger := s.logger.WithContext(ctx).WithField("period", window.Label)

	g, gctx := errgroup.WithContext(ctx)
	for _, report := range snapshotReports {
		g.Go(func() error {
			started := time.Now()
			payload, err := s.computeSnapshot(gctx, report, windows)
			s.metrics.ObserveReport("snapshot_"+report, started, err)
			if err != nil {
				return err
			}

			if err := s.reportSnapshotRepository.SaveOrUpdate(gctx, &domain.ReportSnapshot{
				Report:  report,
				Period:  window.Label,
				Payload: payload,
			}); err != nil {
				return dataSourceError("snapshot "+report, err)
			}

			logger.WithField("report", report).Info("Snapshot mensal salvo")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Erro ao salvar snapshots mensais")
		return err
	}

	return nil
}

func (s *Service) computeSnapshot(ctx context.Context, report string, windows []domain.PeriodWindow) ([]byte, error) {
	var (
		result any
		err    error
	)

	switch report {
	case domain.ReportRevenueTrend:
		result, err = s.revenueTrend(ctx, windows)
	case domain.ReportSubscriptionMRR:
		result, err = s.subscriptionMRR(ctx, windows)
	case domain.ReportCustomerChurn:
		result, err = s.customerChurn(ctx, windows)
	default:
		return nil, invalidRequest("relatório sem snapshot: %s", report)
	}
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar snapshot %s: %w", report, err)
	}

	return payload, nil
}

// ListSnapshots retorna os snapshots gravados de um relatório
func (s *Service) ListSnapshots(ctx context.Context, report string) ([]*domain.ReportSnapshot, error) {
	if !isSnapshotReport(report) {
		return nil, invalidRequest("relatório inválido: %q", report)
	}

	snapshots, err := s.reportSnapshotRepository.ListByReport(ctx, report)
	if err != nil {
		return nil, dataSourceError("snapshots", err)
	}

	if len(snapshots) == 0 {
		return nil, NewReportError(ErrSnapshotNotFound, apiErrors.ErrReportNotFound, report)
	}

	return snapshots, nil
}

// GetAvailablePeriods retorna os períodos com snapshot, separando anos e meses distintos
func (s *Service) GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	periods, err := s.reportSnapshotRepository.GetAllPeriods(ctx)
	if err != nil {
		return nil, dataSourceError("períodos de snapshot", err)
	}

	years := make(map[string]struct{})
	months := make(map[string]struct{})
	valid := make([]string, 0, len(periods))

	for _, period := range periods {
		parts := strings.Split(period, "-")
		if len(parts) != 2 {
			s.logger.WithFields(log.Fields{"period": period}).Warn("Período de snapshot em formato inválido")
			continue
		}
		years[parts[0]] = struct{}{}
		months[parts[1]] = struct{}{}
		valid = append(valid, period)
	}

	return &domain.AvailablePeriods{
		Periods: valid,
		Years:   sortedKeys(years),
		Months:  sortedKeys(months),
	}, nil
}

func isSnapshotReport(report string) bool {
	for _, r := range snapshotReports {
		if r == report {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
