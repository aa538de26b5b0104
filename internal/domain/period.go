package domain

import "time"

type PeriodType string

const (
	PeriodMonth   PeriodType = "month"
	PeriodQuarter PeriodType = "quarter"
)

// PeriodWindow é um intervalo semiaberto [Start, End) usado como balde de agregação
type PeriodWindow struct {
	Label string    `json:"period"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains indica se t pertence a [Start, End)
func (w PeriodWindow) Contains(t *time.Time) bool {
	if t == nil {
		return false
	}
	return !t.Before(w.Start) && t.Before(w.End)
}
