package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
	"github.com/vfg2006/subscription-reports-api/pkg/middleware"
)

// ReportQuery são os parâmetros de consulta aceitos pelos relatórios
type ReportQuery struct {
	PeriodType string `query:"period_type" validate:"omitempty,alpha,max=16"`
	Periods    int    `query:"periods" validate:"gte=0"`
	GroupID    string `query:"group_id" validate:"omitempty,max=64"`
	Level      *int   `query:"level" validate:"omitempty,gte=0"`
	ItemType   string `query:"type" validate:"omitempty,oneof=product service"`
}

// parseReportQuery lê a query string. Sem period_type usa mês; sem periods usa defaultPeriods.
func parseReportQuery(values url.Values, defaultPeriods int) (*ReportQuery, map[string]string) {
	q := &ReportQuery{
		PeriodType: values.Get("period_type"),
		Periods:    defaultPeriods,
		GroupID:    values.Get("group_id"),
		ItemType:   values.Get("type"),
	}
	if q.PeriodType == "" {
		q.PeriodType = string(domain.PeriodMonth)
	}

	invalid := make(map[string]string)

	if raw := values.Get("periods"); raw != "" {
		periods, err := strconv.Atoi(raw)
		if err != nil {
			invalid["periods"] = "int"
		} else {
			q.Periods = periods
		}
	}

	if raw := values.Get("level"); raw != "" {
		level, err := strconv.Atoi(raw)
		if err != nil {
			invalid["level"] = "int"
		} else {
			q.Level = &level
		}
	}

	if len(invalid) > 0 {
		return nil, invalid
	}

	if err := validate.Struct(q); err != nil {
		return nil, validationDetails(err)
	}

	return q, nil
}

// reportHandler concentra autorização e leitura dos parâmetros comuns a todos os relatórios
func reportHandler(service reporting.Reporter, defaultPeriods int, run func(r *http.Request, q *ReportQuery) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.ClaimsFromContext(r.Context())
		if err := service.Authorize(claims); err != nil {
			writeServiceError(w, r, err, "Erro ao verificar permissões")
			return
		}

		q, invalid := parseReportQuery(r.URL.Query(), defaultPeriods)
		if invalid != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetros de consulta inválidos", invalid)
			return
		}

		result, err := run(r, q)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular relatório")
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

// GetRevenueTrend retorna a receita paga por período
func GetRevenueTrend(service reporting.Reporter, defaultPeriods int) http.HandlerFunc {
	return reportHandler(service, defaultPeriods, func(r *http.Request, q *ReportQuery) (any, error) {
		return service.RevenueTrend(r.Context(), domain.PeriodType(q.PeriodType), q.Periods)
	})
}

// GetSubscriptionMRR retorna assinaturas e MRR por período
func GetSubscriptionMRR(service reporting.Reporter, defaultPeriods int) http.HandlerFunc {
	return reportHandler(service, defaultPeriods, func(r *http.Request, q *ReportQuery) (any, error) {
		return service.SubscriptionMRR(r.Context(), domain.PeriodType(q.PeriodType), q.Periods)
	})
}

// GetCustomerChurn retorna o churn de clientes por período
func GetCustomerChurn(service reporting.Reporter, defaultPeriods int) http.HandlerFunc {
	return reportHandler(service, defaultPeriods, func(r *http.Request, q *ReportQuery) (any, error) {
		return service.CustomerChurn(r.Context(), domain.PeriodType(q.PeriodType), q.Periods)
	})
}

// GetPlanPerformance retorna as métricas por Grupo/Nível/Tier. Sem periods na query
// o relatório sai em modo snapshot.
func GetPlanPerformance(service reporting.Reporter) http.HandlerFunc {
	return reportHandler(service, 0, func(r *http.Request, q *ReportQuery) (any, error) {
		req := domain.PlanPerformanceRequest{
			PeriodType:  domain.PeriodType(q.PeriodType),
			Periods:     q.Periods,
			FilterLevel: q.Level,
		}
		if q.GroupID != "" {
			req.FilterGroupID = &q.GroupID
		}
		return service.PlanPerformance(r.Context(), req)
	})
}

// GetItemPerformance retorna receita, unidades e clientes por item, opcionalmente filtrando pelo tipo
func GetItemPerformance(service reporting.Reporter) http.HandlerFunc {
	return reportHandler(service, 0, func(r *http.Request, q *ReportQuery) (any, error) {
		rows, err := service.ItemPerformance(r.Context())
		if err != nil {
			return nil, err
		}
		return reporting.FilterItemsByType(rows, domain.ItemType(q.ItemType)), nil
	})
}
