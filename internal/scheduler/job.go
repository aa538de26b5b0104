package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

// ErrJobRunning indica que já existe uma execução da mesma rotina em andamento
var ErrJobRunning = errors.New("execução já em andamento")

// jobState controla a execução única de uma rotina e guarda o histórico da última execução
type jobState struct {
	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

// begin marca o início de uma execução. Retorna false se outra já estiver rodando.
func (j *jobState) begin(now time.Time) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return false
	}

	j.running = true
	j.lastStartedAt = now
	return true
}

func (j *jobState) finish(now time.Time, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.running = false
	if err != nil {
		j.lastError = err.Error()
		return
	}

	j.lastError = ""
	j.lastCompletedAt = now
}

func (j *jobState) isRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

func (j *jobState) status() map[string]any {
	j.mu.Lock()
	defer j.mu.Unlock()

	return map[string]any{
		"running":                j.running,
		"last_sync_started_at":   j.lastStartedAt,
		"last_sync_completed_at": j.lastCompletedAt,
		"last_error":             j.lastError,
	}
}

// startCron agenda fn no cron informado e para o agendador quando ctx é cancelado
func startCron(ctx context.Context, scheduler *gocron.Scheduler, cron, name string, fn func()) error {
	log.L.WithField("cron", cron).Infof("Iniciando agendador de %s", name)

	if _, err := scheduler.Cron(cron).Do(fn); err != nil {
		return fmt.Errorf("erro ao agendar %s: %w", name, err)
	}

	scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Infof("Parando agendador de %s", name)
		scheduler.Stop()
	}()

	return nil
}
