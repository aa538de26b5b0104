package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/subscription-reports-api/internal/domain"
)

// Janela usada quando o tipo de período não é reconhecido
const fallbackWindow = 30 * 24 * time.Hour

// Clock fornece o instante atual. Os testes injetam um relógio fixo.
type Clock func() time.Time

// PeriodBounds calcula a janela [start, end) em UTC do período que está offset
// períodos antes do período que contém now.
func PeriodBounds(now time.Time, periodType domain.PeriodType, offset int) domain.PeriodWindow {
	now = now.UTC()
	if offset < 0 {
		offset = 0
	}

	switch periodType {
	case domain.PeriodMonth:
		start := time.Date(now.Year(), now.Month()-time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		return domain.PeriodWindow{
			Label: start.Format("2006-01"),
			Start: start,
			End:   end,
		}
	case domain.PeriodQuarter:
		firstMonth := ((int(now.Month())-1)/3)*3 + 1
		start := time.Date(now.Year(), time.Month(firstMonth-3*offset), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 3, 0)
		return domain.PeriodWindow{
			Label: fmt.Sprintf("%d-Q%d", start.Year(), (int(start.Month())-1)/3+1),
			Start: start,
			End:   end,
		}
	default:
		end := now.Add(-time.Duration(offset) * fallbackWindow)
		start := end.Add(-fallbackWindow)
		return domain.PeriodWindow{
			Label: start.Format("2006-01-02"),
			Start: start,
			End:   end,
		}
	}
}

// PeriodWindows retorna as janelas dos últimos periods períodos, da mais antiga para a mais recente
func PeriodWindows(now time.Time, periodType domain.PeriodType, periods int) []domain.PeriodWindow {
	if periods <= 0 {
		return []domain.PeriodWindow{}
	}

	windows := make([]domain.PeriodWindow, 0, periods)
	for offset := periods - 1; offset >= 0; offset-- {
		windows = append(windows, PeriodBounds(now, periodType, offset))
	}

	return windows
}

// IsKnownPeriodType indica se o tipo de período tem janelas de calendário
func IsKnownPeriodType(periodType domain.PeriodType) bool {
	return periodType == domain.PeriodMonth || periodType == domain.PeriodQuarter
}
