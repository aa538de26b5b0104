package reporting

import (
	"strings"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
	"github.com/vfg2006/subscription-reports-api/pkg/log"
)

const (
	weeksPerMonth = 52.0 / 12.0
	daysPerMonth  = 365.25 / 12.0
)

// Normalizer converte valores de ciclos de cobrança diferentes para o equivalente mensal
type Normalizer struct {
	logger log.Logger
}

func NewNormalizer(logger log.Logger) *Normalizer {
	if logger == nil {
		logger = log.L
	}
	return &Normalizer{logger: logger}
}

// ToMonthly retorna o equivalente mensal de amount. Entradas ausentes, zeradas ou
// frequência <= 0 resultam em 0. Intervalo desconhecido resulta em 0 com aviso.
func (n *Normalizer) ToMonthly(amount *int64, interval string, frequency int) float64 {
	if amount == nil || *amount == 0 || interval == "" || frequency <= 0 {
		return 0
	}

	return n.monthly(float64(*amount), interval, frequency)
}

func (n *Normalizer) monthly(amount float64, interval string, frequency int) float64 {
	perCycle := amount / float64(frequency)

	var monthly float64
	switch strings.ToLower(strings.TrimSpace(interval)) {
	case domain.IntervalMonth:
		monthly = perCycle
	case domain.IntervalYear:
		monthly = perCycle / 12
	case domain.IntervalWeek:
		monthly = perCycle * weeksPerMonth
	case domain.IntervalDay:
		monthly = perCycle * daysPerMonth
	default:
		n.logger.WithFields(log.Fields{
			"interval":  interval,
			"frequency": frequency,
		}).Warn("Intervalo de cobrança desconhecido, contribuição mensal zerada")
		return 0
	}

	if monthly < 0 {
		return 0
	}

	return monthly
}
