package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa as métricas Prometheus da API. Todos os métodos aceitam receptor nil,
// o que permite rodar serviços e testes sem registro de métricas.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ReportDuration *prometheus.HistogramVec
	ReportErrors   *prometheus.CounterVec

	PaddleSyncRecords *prometheus.CounterVec
	PaddleSyncErrors  *prometheus.CounterVec

	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
}

// NewMetrics cria e registra as métricas no registry informado
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_http_requests_total",
				Help: "Total de requisições HTTP",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reports_http_request_duration_seconds",
				Help:    "Duração das requisições HTTP em segundos",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ReportDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reports_report_duration_seconds",
				Help:    "Tempo de cálculo de cada relatório em segundos",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"report"},
		),
		ReportErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_report_errors_total",
				Help: "Total de falhas no cálculo de relatórios",
			},
			[]string{"report"},
		),
		PaddleSyncRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_paddle_sync_records_total",
				Help: "Registros sincronizados do Paddle por entidade",
			},
			[]string{"entity"},
		),
		PaddleSyncErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_paddle_sync_errors_total",
				Help: "Falhas de sincronização do Paddle por entidade",
			},
			[]string{"entity"},
		),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reports_cache_hits_total",
			Help: "Relatórios servidos a partir do cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reports_cache_misses_total",
			Help: "Relatórios calculados por ausência no cache",
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ReportDuration,
		m.ReportErrors,
		m.PaddleSyncRecords,
		m.PaddleSyncErrors,
		m.CacheHits,
		m.CacheMisses,
	)

	return m
}

// Handler expõe as métricas no formato Prometheus
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveReport registra a duração de um relatório e, se houver, a falha
func (m *Metrics) ObserveReport(report string, started time.Time, err error) {
	if m == nil {
		return
	}
	m.ReportDuration.WithLabelValues(report).Observe(time.Since(started).Seconds())
	if err != nil {
		m.ReportErrors.WithLabelValues(report).Inc()
	}
}

// AddSyncRecords soma os registros sincronizados de uma entidade
func (m *Metrics) AddSyncRecords(entity string, count int) {
	if m == nil {
		return
	}
	m.PaddleSyncRecords.WithLabelValues(entity).Add(float64(count))
}

// IncSyncError conta uma falha de sincronização de uma entidade
func (m *Metrics) IncSyncError(entity string) {
	if m == nil {
		return
	}
	m.PaddleSyncErrors.WithLabelValues(entity).Inc()
}

// IncCache conta um acerto ou uma falta no cache de relatórios
func (m *Metrics) IncCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CacheHits.Inc()
		return
	}
	m.CacheMisses.Inc()
}

// ObserveHTTP registra uma requisição HTTP concluída
func (m *Metrics) ObserveHTTP(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusLabel(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
