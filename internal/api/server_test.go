package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/subscription-reports-api/internal/api/handler"
	"github.com/vfg2006/subscription-reports-api/internal/config"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
	authmocks "github.com/vfg2006/subscription-reports-api/internal/usecases/authenticating/mocks"
	reportmocks "github.com/vfg2006/subscription-reports-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/subscription-reports-api/pkg/metrics"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:  config.Server{Host: "localhost", Port: "0", AllowOrigins: []string{"*"}},
		Reports: config.Reports{MaxPeriods: 36, DefaultPeriods: 12},
	}
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(testConfig(), nil, nil, nil, nil, handler.CronJobServices{}, nil)

	assert.Error(t, err)
}

func TestNewHandler_Routing(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportmocks.NewMockReporter(ctrl)
	snapshots := reportmocks.NewMockSnapshotManager(ctrl)
	auth := authmocks.NewMockAuthenticator(ctrl)
	m := metrics.NewMetrics(prometheus.NewRegistry())

	admin := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}
	viewer := &domain.Claims{UserID: 3, UserRoleID: domain.RoleViewer}
	auth.EXPECT().ValidateToken("admin").Return(admin, nil).AnyTimes()
	auth.EXPECT().ValidateToken("viewer").Return(viewer, nil).AnyTimes()

	reporter.EXPECT().Authorize(admin).Return(nil).AnyTimes()
	reporter.EXPECT().ItemPerformance(gomock.Any()).Return([]domain.ItemPerformance{}, nil).AnyTimes()
	snapshots.EXPECT().GetAvailablePeriods(gomock.Any()).Return(&domain.AvailablePeriods{}, nil).AnyTimes()

	h := NewHandler(testConfig(), reporter, snapshots, auth, m, handler.CronJobServices{}, nil)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"healthcheck é público", http.MethodGet, "/healthcheck", "", http.StatusOK},
		{"métricas são públicas", http.MethodGet, "/metrics", "", http.StatusOK},
		{"relatório exige token", http.MethodGet, "/v1/reports/item-performance", "", http.StatusUnauthorized},
		{"leitor não acessa relatórios", http.MethodGet, "/v1/reports/item-performance", "viewer", http.StatusForbidden},
		{"admin acessa relatórios", http.MethodGet, "/v1/reports/item-performance", "admin", http.StatusOK},
		{"períodos de snapshot", http.MethodGet, "/v1/reports/snapshots/periods", "admin", http.StatusOK},
		{"leitor não cria usuários", http.MethodPost, "/v1/users", "viewer", http.StatusForbidden},
		{"leitor não vê status das crons", http.MethodGet, "/v1/cron/status", "viewer", http.StatusForbidden},
		{"admin vê status das crons", http.MethodGet, "/v1/cron/status", "admin", http.StatusOK},
		{"rota inexistente", http.MethodGet, "/v1/reports/unknown", "admin", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/v1/reports/item-performance", "403")))
}
