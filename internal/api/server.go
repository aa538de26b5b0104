package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/vfg2006/subscription-reports-api/internal/api/handler"
	"github.com/vfg2006/subscription-reports-api/internal/api/handler/router"
	"github.com/vfg2006/subscription-reports-api/internal/config"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/subscription-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
	"github.com/vfg2006/subscription-reports-api/pkg/metrics"
	"github.com/vfg2006/subscription-reports-api/pkg/middleware"
)

type cleanup struct {
	name string
	fn   func() error
}

type Server struct {
	httpServer *http.Server
	cleanups   []cleanup
}

func New(
	config *config.Config,
	reporter reporting.Reporter,
	snapshots reporting.SnapshotManager,
	authenticator authenticating.Authenticator,
	m *metrics.Metrics,
	cronServices handler.CronJobServices,
	healthDeps map[string]handler.Pinger,
) (*Server, error) {
	if reporter == nil || snapshots == nil || authenticator == nil {
		return nil, fmt.Errorf("serviços de relatório e autenticação são obrigatórios")
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, reporter, snapshots, authenticator, m, cronServices, healthDeps),
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       config.Server.ReadTimeout,
			WriteTimeout:      config.Server.WriteTimeout,
		},
	}, nil
}

// NewHandler monta o router com as rotas e a cadeia global de middlewares
func NewHandler(
	config *config.Config,
	reporter reporting.Reporter,
	snapshots reporting.SnapshotManager,
	authenticator authenticating.Authenticator,
	m *metrics.Metrics,
	cronServices handler.CronJobServices,
	healthDeps map[string]handler.Pinger,
) http.Handler {
	configs := []router.ConfigRouter{}
	if m != nil {
		configs = append(configs,
			router.WithMetrics(m),
			router.WithRoutes(handler.Metrics(m.Handler())...),
		)
	}

	configs = append(configs,
		router.WithRoutes(handler.Healthcheck(healthDeps)...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Reports(reporter, config.Reports.DefaultPeriods)...),
		router.WithRoutes(handler.Snapshots(snapshots)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// OnShutdown registra uma limpeza executada depois que o servidor HTTP para
func (s *Server) OnShutdown(name string, fn func() error) {
	s.cleanups = append(s.cleanups, cleanup{name: name, fn: fn})
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	log.L.Info("Servidor HTTP desligado com sucesso")

	var errs []error
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		c := s.cleanups[i]
		if err := c.fn(); err != nil {
			log.L.WithError(err).WithField("resource", c.name).Error("Erro ao liberar recurso")
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}

	return errors.Join(errs...)
}
