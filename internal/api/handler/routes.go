package handler

import (
	"net/http"

	"github.com/vfg2006/subscription-reports-api/internal/api/handler/router"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/subscription-reports-api/pkg/middleware"
)

func Healthcheck(deps map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(deps),
		},
	}
}

func Metrics(handler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: handler,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(service reporting.Reporter, defaultPeriods int) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/revenue-trend",
			Method:      http.MethodGet,
			Handler:     GetRevenueTrend(service, defaultPeriods),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReportReaders()},
		},
		{
			Path:        "/v1/reports/subscription-mrr",
			Method:      http.MethodGet,
			Handler:     GetSubscriptionMRR(service, defaultPeriods),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReportReaders()},
		},
		{
			Path:        "/v1/reports/customer-churn",
			Method:      http.MethodGet,
			Handler:     GetCustomerChurn(service, defaultPeriods),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReportReaders()},
		},
		{
			Path:        "/v1/reports/plan-performance",
			Method:      http.MethodGet,
			Handler:     GetPlanPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReportReaders()},
		},
		{
			Path:        "/v1/reports/item-performance",
			Method:      http.MethodGet,
			Handler:     GetItemPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReportReaders()},
		},
	}
}

func Snapshots(service reporting.SnapshotManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/snapshots",
			Method:      http.MethodGet,
			Handler:     ListReportSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReportReaders()},
		},
		{
			Path:        "/v1/reports/snapshots/periods",
			Method:      http.MethodGet,
			Handler:     GetSnapshotPeriods(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ReportReaders()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
