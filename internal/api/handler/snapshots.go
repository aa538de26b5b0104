package handler

import (
	"net/http"

	"github.com/vfg2006/subscription-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
)

type snapshotQuery struct {
	Report string `query:"report" validate:"required,oneof=revenue_trend subscription_mrr customer_churn"`
}

// ListReportSnapshots retorna os snapshots mensais gravados de um relatório
func ListReportSnapshots(service reporting.SnapshotManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := snapshotQuery{Report: r.URL.Query().Get("report")}
		if err := validate.Struct(q); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro report inválido", validationDetails(err))
			return
		}

		snapshots, err := service.ListSnapshots(r.Context(), q.Report)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar snapshots")
			return
		}

		writeJSON(w, r, http.StatusOK, snapshots)
	})
}

// GetSnapshotPeriods retorna os períodos que possuem snapshot
func GetSnapshotPeriods(service reporting.SnapshotManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		periods, err := service.GetAvailablePeriods(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar períodos disponíveis")
			return
		}

		writeJSON(w, r, http.StatusOK, periods)
	})
}
