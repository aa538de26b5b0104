package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/subscription-reports-api/infrastructure/cache"
	"github.com/vfg2006/subscription-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/subscription-reports-api/infrastructure/integrator/paddle"
	"github.com/vfg2006/subscription-reports-api/infrastructure/integrator/paddle/paddleclient"
	"github.com/vfg2006/subscription-reports-api/infrastructure/repository"
	"github.com/vfg2006/subscription-reports-api/internal/api"
	"github.com/vfg2006/subscription-reports-api/internal/api/handler"
	"github.com/vfg2006/subscription-reports-api/internal/config"
	"github.com/vfg2006/subscription-reports-api/internal/scheduler"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
	"github.com/vfg2006/subscription-reports-api/pkg/metrics"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.NewMetrics(registry)

	subscriptionRepo := repository.NewSubscriptionRepository(pgConn)
	transactionRepo := repository.NewTransactionRepository(pgConn)
	lineItemRepo := repository.NewLineItemRepository(pgConn)
	catalogRepo := repository.NewCatalogRepository(pgConn)
	planGroupRepo := repository.NewPlanGroupRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	reportSnapshotRepo := repository.NewReportSnapshotRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	healthDeps := map[string]handler.Pinger{"postgres": pgConn}

	reportOpts := []reporting.Option{
		reporting.WithLogger(log.L),
		reporting.WithMetrics(m),
		reporting.WithMaxPeriods(cfg.Reports.MaxPeriods),
	}

	var reportCache *cache.RedisCache
	if cfg.Cache.Enabled() {
		reportCache, err = cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
		if err != nil {
			log.L.WithError(err).Warn("Redis indisponível, relatórios serão calculados sem cache")
		} else {
			reportOpts = append(reportOpts, reporting.WithCache(reportCache, cfg.Cache.TTL()))
			healthDeps["redis"] = reportCache
			log.L.Info("Cache de relatórios habilitado")
		}
	}

	reportService := reporting.NewService(
		subscriptionRepo,
		transactionRepo,
		lineItemRepo,
		catalogRepo,
		planGroupRepo,
		reportSnapshotRepo,
		reportOpts...,
	)

	authenticator := authenticating.NewService(userRepo, cfg)

	cronServices := handler.CronJobServices{}

	if cfg.Paddle.APIKey != "" {
		paddleClient, err := paddleclient.NewClient(cfg.Paddle)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao criar cliente do Paddle")
		}

		paddleSyncService := scheduler.NewPaddleSyncService(
			scheduler.SyncRepositories{
				Catalog:      catalogRepo,
				PlanGroups:   planGroupRepo,
				Customers:    customerRepo,
				Subscription: subscriptionRepo,
				Transaction:  transactionRepo,
				LineItem:     lineItemRepo,
			},
			paddle.New(paddleClient),
			m,
			cfg,
		)
		if reportCache != nil {
			paddleSyncService.WithCacheInvalidation(reportCache, cache.ReportKeyPrefix)
		}

		if err := paddleSyncService.Start(ctx); err != nil {
			log.L.WithError(err).Error("Erro ao iniciar o agendador de sincronização do Paddle")
		}
		cronServices.PaddleSync = paddleSyncService
	} else {
		log.L.Warn("PADDLE_API_KEY não configurada, sincronização do Paddle indisponível")
	}

	reportSnapshotService := scheduler.NewReportSnapshotSyncService(reportService, cfg)
	if err := reportSnapshotService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de snapshots mensais")
	}
	cronServices.ReportSnapshot = reportSnapshotService

	server, err := api.New(
		cfg,
		reportService,
		reportService,
		authenticator,
		m,
		cronServices,
		healthDeps,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	server.OnShutdown("postgres", pgConn.Close)
	if reportCache != nil {
		server.OnShutdown("redis", reportCache.Close)
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Servidor encerrado com erro")
	}
}

// chdirToSource faz o processo rodar a partir do diretório do main, onde o .env local é procurado
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
