package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

// Pinger é uma dependência externa verificada pelo healthcheck (banco, redis)
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 com o horário atual. Quando alguma dependência
// não responde ao ping o status vira 503.
func HealthcheckHandler(deps map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		checks := make(map[string]string, len(deps))
		for name, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).WithField("dependency", name).Warn("Dependência indisponível no healthcheck")
				checks[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "up"
		}

		writeJSON(w, r, status, map[string]any{
			"time":   time.Now().UTC().Format(time.RFC3339),
			"checks": checks,
		})
	})
}
