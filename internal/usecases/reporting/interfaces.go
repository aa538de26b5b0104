package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

// Reporter define os relatórios financeiros e de assinaturas
type Reporter interface {
	// Authorize verifica se o usuário pode consultar relatórios
	Authorize(claims *domain.Claims) error

	// RevenueTrend soma a receita das transações pagas por período
	RevenueTrend(ctx context.Context, periodType domain.PeriodType, periods int) ([]domain.RevenuePeriod, error)

	// SubscriptionMRR calcula assinaturas ativas, novas, canceladas e o MRR de cada período
	SubscriptionMRR(ctx context.Context, periodType domain.PeriodType, periods int) ([]domain.MRRPeriod, error)

	// CustomerChurn calcula o churn de clientes distintos por período
	CustomerChurn(ctx context.Context, periodType domain.PeriodType, periods int) ([]domain.ChurnPeriod, error)

	// PlanPerformance agrupa as assinaturas por Grupo/Nível/Tier
	PlanPerformance(ctx context.Context, req domain.PlanPerformanceRequest) (*domain.PlanPerformanceReport, error)

	// ItemPerformance agrega receita, unidades e clientes por item do catálogo
	ItemPerformance(ctx context.Context) ([]domain.ItemPerformance, error)
}

// SnapshotManager persiste e consulta os relatórios mensais já fechados
type SnapshotManager interface {
	SaveMonthlySnapshots(ctx context.Context, month time.Time) error
	ListSnapshots(ctx context.Context, report string) ([]*domain.ReportSnapshot, error)
	GetAvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
}

// ReportCache guarda resultados de relatórios já calculados
type ReportCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}
