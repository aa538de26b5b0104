package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/subscription-reports-api/infrastructure/integrator/paddle"
	"github.com/vfg2006/subscription-reports-api/infrastructure/repository"
	"github.com/vfg2006/subscription-reports-api/internal/config"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
	"github.com/vfg2006/subscription-reports-api/pkg/metrics"
)

// Entidades sincronizadas, usadas como rótulo nas métricas
const (
	entityItems         = "items"
	entityPrices        = "prices"
	entityPlanGroups    = "plan_groups"
	entityCustomers     = "customers"
	entitySubscriptions = "subscriptions"
	entityTransactions  = "transactions"
	entityLineItems     = "line_items"
	entityCache         = "cache"
)

// PaddleSyncConfig representa a configuração do agendador de sincronização do Paddle
type PaddleSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// SyncRepositories reúne os repositórios gravados pela sincronização
type SyncRepositories struct {
	Catalog      repository.CatalogRepository
	PlanGroups   repository.PlanGroupRepository
	Customers    repository.CustomerRepository
	Subscription repository.SubscriptionRepository
	Transaction  repository.TransactionRepository
	LineItem     repository.LineItemRepository
}

// CacheInvalidator remove relatórios em cache depois que a base muda
type CacheInvalidator interface {
	InvalidatePrefix(ctx context.Context, prefix string) (int, error)
}

// PaddleSyncService gerencia o agendamento e a execução da sincronização de cobrança com o Paddle
type PaddleSyncService struct {
	scheduler   *gocron.Scheduler
	config      PaddleSyncConfig
	repos       SyncRepositories
	paddle      paddle.PaddleIntegrator
	metrics     *metrics.Metrics
	cache       CacheInvalidator
	cachePrefix string
	now         func() time.Time
	state       jobState
}

// NewPaddleSyncService cria uma nova instância do serviço de sincronização do Paddle
func NewPaddleSyncService(
	repos SyncRepositories,
	paddleService paddle.PaddleIntegrator,
	m *metrics.Metrics,
	appConfig *config.Config,
) *PaddleSyncService {
	syncConfig := PaddleSyncConfig{
		CronSchedule: appConfig.PaddleSync.CronSchedule,
		LookbackDays: appConfig.PaddleSync.LookbackDays,
		SyncEnabled:  appConfig.PaddleSync.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização do Paddle carregada")

	return &PaddleSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		repos:     repos,
		paddle:    paddleService,
		metrics:   m,
		now:       time.Now,
	}
}

// WithCacheInvalidation faz a sincronização limpar as chaves com o prefixo informado ao terminar
func (s *PaddleSyncService) WithCacheInvalidation(cache CacheInvalidator, prefix string) *PaddleSyncService {
	s.cache = cache
	s.cachePrefix = prefix
	return s
}

// Start inicia o agendador
func (s *PaddleSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Sincronização do Paddle desabilitada por configuração")
		return nil
	}

	return startCron(ctx, s.scheduler, s.config.CronSchedule, "sincronização do Paddle", func() {
		_ = s.RunSync(context.Background())
	})
}

// RunSync executa a sincronização completa. Retorna ErrJobRunning se outra execução estiver em andamento.
func (s *PaddleSyncService) RunSync(ctx context.Context) error {
	if !s.state.begin(s.now()) {
		log.L.Info("Sincronização do Paddle já em andamento, ignorando")
		return ErrJobRunning
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)
	startTime := time.Now()

	err := s.sync(ctx)
	s.state.finish(s.now(), err)

	if err != nil {
		logger.WithError(err).Error("Sincronização do Paddle interrompida")
		return err
	}

	logger.WithField("duration", time.Since(startTime).String()).Info("Sincronização do Paddle concluída")
	return nil
}

// sync grava as entidades na ordem das chaves estrangeiras: catálogo, clientes,
// assinaturas, transações e itens de transação
func (s *PaddleSyncService) sync(ctx context.Context) error {
	logger := log.ForContext(ctx)

	catalog, err := s.paddle.GetCatalog(ctx)
	if err != nil {
		return s.syncError(entityItems, "buscar catálogo", err)
	}

	if err := s.repos.Catalog.SaveOrUpdateItems(ctx, catalog.Items); err != nil {
		return s.syncError(entityItems, "salvar itens", err)
	}
	s.metrics.AddSyncRecords(entityItems, len(catalog.Items))

	if err := s.repos.PlanGroups.SaveOrUpdate(ctx, catalog.PlanGroups); err != nil {
		return s.syncError(entityPlanGroups, "salvar grupos de plano", err)
	}
	s.metrics.AddSyncRecords(entityPlanGroups, len(catalog.PlanGroups))

	if err := s.repos.Catalog.SaveOrUpdatePrices(ctx, catalog.Prices); err != nil {
		return s.syncError(entityPrices, "salvar preços", err)
	}
	s.metrics.AddSyncRecords(entityPrices, len(catalog.Prices))

	customers, err := s.paddle.GetCustomers(ctx)
	if err != nil {
		return s.syncError(entityCustomers, "buscar clientes", err)
	}
	if err := s.repos.Customers.SaveOrUpdate(ctx, customers); err != nil {
		return s.syncError(entityCustomers, "salvar clientes", err)
	}
	s.metrics.AddSyncRecords(entityCustomers, len(customers))

	subscriptions, err := s.paddle.GetSubscriptions(ctx, catalog.Prices)
	if err != nil {
		return s.syncError(entitySubscriptions, "buscar assinaturas", err)
	}
	if err := s.repos.Subscription.SaveOrUpdate(ctx, subscriptions); err != nil {
		return s.syncError(entitySubscriptions, "salvar assinaturas", err)
	}
	s.metrics.AddSyncRecords(entitySubscriptions, len(subscriptions))

	since := s.updatedSince()
	transactions, lineItems, err := s.paddle.GetTransactions(ctx, since)
	if err != nil {
		return s.syncError(entityTransactions, "buscar transações", err)
	}
	if err := s.repos.Transaction.SaveOrUpdate(ctx, transactions); err != nil {
		return s.syncError(entityTransactions, "salvar transações", err)
	}
	s.metrics.AddSyncRecords(entityTransactions, len(transactions))

	if err := s.repos.LineItem.SaveOrUpdate(ctx, lineItems); err != nil {
		return s.syncError(entityLineItems, "salvar itens de transação", err)
	}
	s.metrics.AddSyncRecords(entityLineItems, len(lineItems))

	fields := log.Fields{
		"items":         len(catalog.Items),
		"prices":        len(catalog.Prices),
		"customers":     len(customers),
		"subscriptions": len(subscriptions),
		"transactions":  len(transactions),
		"line_items":    len(lineItems),
	}
	if !since.IsZero() {
		fields["updated_since"] = since.Format(time.DateOnly)
	}

	if total, err := s.repos.Customers.CountCustomers(ctx); err == nil {
		fields["customers_in_store"] = total
	} else {
		logger.WithError(err).Warn("Erro ao contar clientes após a sincronização")
	}

	logger.WithFields(fields).Info("Entidades do Paddle sincronizadas")

	s.invalidateCache(ctx)
	return nil
}

// updatedSince retorna o limite inferior de updated_at para as transações. Zero busca todo o histórico.
func (s *PaddleSyncService) updatedSince() time.Time {
	if s.config.LookbackDays <= 0 {
		return time.Time{}
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -s.config.LookbackDays)
}

func (s *PaddleSyncService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}

	removed, err := s.cache.InvalidatePrefix(ctx, s.cachePrefix)
	if err != nil {
		s.metrics.IncSyncError(entityCache)
		log.ForContext(ctx).WithError(err).Warn("Erro ao invalidar relatórios em cache")
		return
	}

	log.ForContext(ctx).WithField("removed", removed).Debug("Relatórios em cache invalidados")
}

func (s *PaddleSyncService) syncError(entity, action string, err error) error {
	s.metrics.IncSyncError(entity)
	return fmt.Errorf("erro ao %s: %w", action, err)
}

// TriggerManualSync inicia manualmente uma sincronização. Retorna false se já houver uma em andamento.
func (s *PaddleSyncService) TriggerManualSync() bool {
	if s.state.isRunning() {
		log.L.Info("Sincronização do Paddle já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando sincronização manual do Paddle")
	go func() {
		_ = s.RunSync(context.Background())
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *PaddleSyncService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["sync_lookback_days"] = s.config.LookbackDays
	return status
}
