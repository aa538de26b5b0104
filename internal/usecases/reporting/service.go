package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/subscription-reports-api/infrastructure/repository"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
	"github.com/vfg2006/subscription-reports-api/pkg/metrics"
)

const defaultMaxPeriods = 36

// Service implementa Reporter e SnapshotManager
type Service struct {
	subscriptionRepository   repository.SubscriptionRepository
	transactionRepository    repository.TransactionRepository
	lineItemRepository       repository.LineItemRepository
	catalogRepository        repository.CatalogRepository
	planGroupRepository      repository.PlanGroupRepository
	reportSnapshotRepository repository.ReportSnapshotRepository

	normalizer *Normalizer
	logger     log.Logger
	clock      Clock
	metrics    *metrics.Metrics
	cache      ReportCache
	cacheTTL   time.Duration
	maxPeriods int
}

type Option func(*Service)

// WithLogger define o logger usado pelos relatórios
func WithLogger(logger log.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock substitui o relógio usado para calcular os períodos
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithCache habilita o cache de relatórios
func WithCache(cache ReportCache, ttl time.Duration) Option {
	return func(s *Service) {
		if cache != nil && ttl > 0 {
			s.cache = cache
			s.cacheTTL = ttl
		}
	}
}

// WithMetrics registra a duração dos relatórios
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithMaxPeriods limita a quantidade de períodos aceitos por requisição
func WithMaxPeriods(maxPeriods int) Option {
	return func(s *Service) {
		if maxPeriods > 0 {
			s.maxPeriods = maxPeriods
		}
	}
}

// NewService cria uma nova instância do serviço de relatórios
func NewService(
	subscriptionRepo repository.SubscriptionRepository,
	transactionRepo repository.TransactionRepository,
	lineItemRepo repository.LineItemRepository,
	catalogRepo repository.CatalogRepository,
	planGroupRepo repository.PlanGroupRepository,
	reportSnapshotRepo repository.ReportSnapshotRepository,
	opts ...Option,
) *Service {
	s := &Service{
		subscriptionRepository:   subscriptionRepo,
		transactionRepository:    transactionRepo,
		lineItemRepository:       lineItemRepo,
		catalogRepository:        catalogRepo,
		planGroupRepository:      planGroupRepo,
		reportSnapshotRepository: reportSnapshotRepo,
		logger:                   log.L,
		clock:                    func() time.Time { return time.Now().UTC() },
		maxPeriods:               defaultMaxPeriods,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.normalizer = NewNormalizer(s.logger)

	return s
}

// Authorize retorna ErrPermissionDenied para usuários sem perfil de leitura de relatórios
func (s *Service) Authorize(claims *domain.Claims) error {
	if claims == nil {
		return NewReportError(ErrPermissionDenied, apiErrors.ErrInvalidToken, "usuário não autenticado")
	}

	if claims.UserRoleID != domain.RoleAdmin && claims.UserRoleID != domain.RoleAnalyst {
		s.logger.WithFields(log.Fields{
			"user_id": claims.UserID,
			"role_id": claims.UserRoleID,
		}).Warn("Acesso negado aos relatórios")
		return NewReportError(ErrPermissionDenied, apiErrors.ErrInsufficientPrivilege, "perfil sem acesso a relatórios")
	}

	return nil
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}

// windows monta as janelas do relatório, avisando quando o tipo cai no fallback de 30 dias
func (s *Service) windows(ctx context.Context, periodType domain.PeriodType, periods int) []domain.PeriodWindow {
	s.warnUnknownPeriodType(ctx, periodType)
	return PeriodWindows(s.now(), periodType, periods)
}

// currentWindow é a janela que contém o instante atual
func (s *Service) currentWindow(ctx context.Context, periodType domain.PeriodType) domain.PeriodWindow {
	s.warnUnknownPeriodType(ctx, periodType)
	return PeriodBounds(s.now(), periodType, 0)
}

func (s *Service) warnUnknownPeriodType(ctx context.Context, periodType domain.PeriodType) {
	if !IsKnownPeriodType(periodType) {
		s.logger.WithContext(ctx).WithField("period_type", periodType).
			Warn("tipo de período desconhecido, usando janelas móveis de 30 dias")
	}
}

func (s *Service) validatePeriods(periods int) error {
	if periods < 0 {
		return invalidRequest("periods não pode ser negativo")
	}
	if periods > s.maxPeriods {
		return invalidRequest("periods deve ser no máximo %d", s.maxPeriods)
	}
	return nil
}

// cacheKey identifica um resultado pelo relatório, pelos parâmetros e pelo mês corrente,
// para que uma virada de mês nunca sirva dados da janela anterior
func (s *Service) cacheKey(report string, params ...any) string {
	parts := make([]string, 0, len(params)+3)
	parts = append(parts, "reports", report, PeriodBounds(s.now(), domain.PeriodMonth, 0).Label)
	for _, p := range params {
		parts = append(parts, fmt.Sprint(p))
	}
	return strings.Join(parts, ":")
}

// runReport executa compute consultando o cache antes e registrando métricas depois.
// Falhas do cache são apenas registradas.
func runReport[T any](ctx context.Context, s *Service, report string, key string, compute func() (T, error)) (T, error) {
	started := time.Now()
	logger := s.logger.WithContext(ctx).WithField("report", report)

	if s.cache != nil {
		var cached T
		hit, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.WithError(err).Warn("Falha ao ler cache de relatório")
		}
		s.metrics.IncCache(hit)
		if hit {
			s.metrics.ObserveReport(report, started, nil)
			return cached, nil
		}
	}

	result, err := compute()
	s.metrics.ObserveReport(report, started, err)
	if err != nil {
		logger.WithError(err).Error("Erro ao calcular relatório")
		return result, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
			logger.WithError(err).Warn("Falha ao gravar cache de relatório")
		}
	}

	logger.WithField("elapsed", time.Since(started).String()).Debug("Relatório calculado")

	return result, nil
}

// loadPaidLookup carrega as transações pagas de assinaturas e monta o índice por assinatura
func (s *Service) loadPaidLookup(ctx context.Context) (TransactionLookup, error) {
	txns, err := s.transactionRepository.ListTransactions(ctx, &domain.TransactionFilter{
		Statuses:             []domain.TransactionStatus{domain.TransactionStatusPaid},
		OnlyWithSubscription: true,
	})
	if err != nil {
		return nil, dataSourceError("transações pagas", err)
	}

	return NewTransactionLookup(txns), nil
}

func (s *Service) loadSubscriptions(ctx context.Context, filter *domain.SubscriptionFilter) ([]*domain.Subscription, error) {
	subs, err := s.subscriptionRepository.ListSubscriptions(ctx, filter)
	if err != nil {
		return nil, dataSourceError("assinaturas", err)
	}
	return subs, nil
}
