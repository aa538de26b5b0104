package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

// Tipos de cron job aceitos em /v1/cron/:type/run
const (
	CronJobTypePaddleSync     = "paddle-sync"
	CronJobTypeReportSnapshot = "report-snapshot"
	CronJobTypeAll            = "all"
)

// CronJob é um agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente.
// Um campo nil indica que o serviço não foi configurado.
type CronJobServices struct {
	PaddleSync     CronJob
	ReportSnapshot CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, string) {
	switch cronType {
	case CronJobTypePaddleSync:
		return s.PaddleSync, "Serviço de sincronização do Paddle não disponível"
	case CronJobTypeReportSnapshot:
		return s.ReportSnapshot, "Serviço de snapshots mensais não disponível"
	}
	return nil, ""
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithField("type", cronType)

		if cronType == CronJobTypeAll {
			started := make(map[string]bool)
			for _, t := range []string{CronJobTypePaddleSync, CronJobTypeReportSnapshot} {
				if job, _ := services.byType(t); job != nil {
					started[t] = job.TriggerManualSync()
				}
			}
			logger.Info("Cron jobs disparadas manualmente")
			writeJSON(w, r, http.StatusAccepted, map[string]any{
				"message": "Cron jobs iniciadas",
				"type":    cronType,
				"started": started,
			})
			return
		}

		job, unavailable := services.byType(cronType)
		if unavailable == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: paddle-sync, report-snapshot, all", nil)
			return
		}
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, unavailable, nil)
			return
		}

		if !job.TriggerManualSync() {
			writeJSON(w, r, http.StatusConflict, map[string]any{
				"message": "Cron job já está em execução",
				"type":    cronType,
			})
			return
		}

		logger.Info("Cron job disparada manualmente")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, 2)
		for _, t := range []string{CronJobTypePaddleSync, CronJobTypeReportSnapshot} {
			if job, _ := services.byType(t); job != nil {
				status[t] = job.GetStatus()
			} else {
				status[t] = map[string]any{"configured": false}
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
