package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/subscription-reports-api/pkg/apiErrors"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
	"github.com/vfg2006/subscription-reports-api/pkg/metrics"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)

	claims := &domain.Claims{UserID: 1, UserRoleID: domain.RoleAnalyst}
	auth.EXPECT().ValidateToken("valido").Return(claims, nil).AnyTimes()
	auth.EXPECT().ValidateToken("expirado").Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "")).AnyTimes()

	var seen *domain.Claims
	handler := AuthMiddleware(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		path     string
		header   string
		status   int
		code     string
		expected *domain.Claims
	}{
		{name: "rota pública sem token", path: "/healthcheck", status: http.StatusOK},
		{name: "sem cabeçalho", path: "/v1/reports/revenue-trend", status: http.StatusUnauthorized, code: apiErrors.ErrInvalidToken},
		{name: "sem prefixo Bearer", path: "/v1/me", header: "valido", status: http.StatusUnauthorized, code: apiErrors.ErrInvalidToken},
		{name: "token expirado", path: "/v1/me", header: "Bearer expirado", status: http.StatusUnauthorized, code: apiErrors.ErrExpiredToken},
		{name: "token válido", path: "/v1/me", header: "Bearer valido", status: http.StatusOK, expected: claims},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, decodeAPIError(t, rec).Code)
			}
			assert.Equal(t, tt.expected, seen)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		middleware func(http.Handler) http.Handler
		claims     *domain.Claims
		status     int
	}{
		{"sem autenticação", ReportReaders(), nil, http.StatusUnauthorized},
		{"analista lê relatórios", ReportReaders(), &domain.Claims{UserRoleID: domain.RoleAnalyst}, http.StatusOK},
		{"leitor não lê relatórios", ReportReaders(), &domain.Claims{UserRoleID: domain.RoleViewer}, http.StatusForbidden},
		{"analista não executa cron", AdminOnly(), &domain.Claims{UserRoleID: domain.RoleAnalyst}, http.StatusForbidden},
		{"admin executa cron", AdminOnly(), &domain.Claims{UserRoleID: domain.RoleAdmin}, http.StatusOK},
		{"leitor acessa perfil", AllRoles(), &domain.Claims{UserRoleID: domain.RoleViewer}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/reports/item-performance", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler)

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/me", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("curinga", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set("Origin", "https://qualquer.example")
		rec := httptest.NewRecorder()

		Cors([]string{"*"})(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, "https://qualquer.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	var fromCtx string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("reaproveita o cabeçalho", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set(CorrelationIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", fromCtx)
		assert.Equal(t, "abc-123", rec.Header().Get(CorrelationIDHeader))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("gera um novo", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.NotEmpty(t, fromCtx)
		assert.Equal(t, fromCtx, rec.Header().Get(CorrelationIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apiErrors.ErrInternalServer, decodeAPIError(t, rec).Code)
}

func TestMetrics(t *testing.T) {
	m := metrics.NewMetrics(prometheus.NewRegistry())
	handler := Metrics(m, "/v1/cron/:type/run")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
		w.WriteHeader(http.StatusAccepted)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/cron/all/run", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/v1/cron/:type/run", "202")))
}
