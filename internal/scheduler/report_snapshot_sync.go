package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/subscription-reports-api/internal/config"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

// ReportSnapshotSyncConfig representa a configuração do agendador de snapshots mensais
type ReportSnapshotSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// ReportSnapshotSyncService grava os relatórios dos últimos meses fechados
type ReportSnapshotSyncService struct {
	scheduler *gocron.Scheduler
	config    ReportSnapshotSyncConfig
	snapshots reporting.SnapshotManager
	now       func() time.Time
	state     jobState
}

// NewReportSnapshotSyncService cria uma nova instância do serviço de snapshots mensais
func NewReportSnapshotSyncService(snapshots reporting.SnapshotManager, appConfig *config.Config) *ReportSnapshotSyncService {
	syncConfig := ReportSnapshotSyncConfig{
		CronSchedule:  appConfig.ReportSnapshot.CronSchedule,
		SyncEnabled:   appConfig.ReportSnapshot.Enabled,
		MonthLookBack: appConfig.ReportSnapshot.MonthLookBack,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"sync_enabled":    syncConfig.SyncEnabled,
		"month_look_back": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de snapshots mensais carregada")

	return &ReportSnapshotSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *ReportSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Snapshots mensais de relatórios desabilitados por configuração")
		return nil
	}

	return startCron(ctx, s.scheduler, s.config.CronSchedule, "snapshots mensais de relatórios", func() {
		_ = s.RunSnapshots(context.Background())
	})
}

// RunSnapshots grava os snapshots de cada um dos MonthLookBack meses anteriores ao atual.
// Um mês com erro não impede os demais; o primeiro erro é retornado ao final.
func (s *ReportSnapshotSyncService) RunSnapshots(ctx context.Context) error {
	if !s.state.begin(s.now()) {
		log.L.Info("Snapshots mensais já em andamento, ignorando")
		return ErrJobRunning
	}

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)
	startTime := time.Now()

	var errs []error
	for _, month := range s.monthsToProcess() {
		logger.WithField("month", month.Format("2006-01")).Info("Gerando snapshots mensais")

		if err := s.snapshots.SaveMonthlySnapshots(ctx, month); err != nil {
			logger.WithError(err).WithField("month", month.Format("2006-01")).Error("Erro ao gerar snapshots do mês")
			errs = append(errs, err)
		}
	}

	err := errors.Join(errs...)
	s.state.finish(s.now(), err)

	logger.WithFields(log.Fields{
		"duration": time.Since(startTime).String(),
		"months":   s.config.MonthLookBack,
		"failures": len(errs),
	}).Info("Snapshots mensais concluídos")

	return err
}

// monthsToProcess retorna o primeiro dia de cada mês fechado, do mais antigo ao mais recente
func (s *ReportSnapshotSyncService) monthsToProcess() []time.Time {
	lookBack := s.config.MonthLookBack
	if lookBack < 1 {
		lookBack = 1
	}

	now := s.now().UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]time.Time, 0, lookBack)
	for i := lookBack; i >= 1; i-- {
		months = append(months, current.AddDate(0, -i, 0))
	}

	return months
}

// TriggerManualSync inicia manualmente a geração dos snapshots. Retorna false se já houver uma em andamento.
func (s *ReportSnapshotSyncService) TriggerManualSync() bool {
	if s.state.isRunning() {
		log.L.Info("Snapshots mensais já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando geração manual dos snapshots mensais")
	go func() {
		_ = s.RunSnapshots(context.Background())
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *ReportSnapshotSyncService) GetStatus() map[string]any {
	status := s.state.status()
	status["sync_enabled"] = s.config.SyncEnabled
	status["sync_cron"] = s.config.CronSchedule
	status["month_look_back"] = s.config.MonthLookBack
	return status
}
