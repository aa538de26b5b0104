package domain

import (
	"encoding/json"
	"time"
)

// Nomes dos relatórios. Só os três primeiros têm snapshots mensais.
const (
	ReportRevenueTrend    = "revenue_trend"
	ReportSubscriptionMRR = "subscription_mrr"
	ReportCustomerChurn   = "customer_churn"
	ReportPlanPerformance = "plan_performance"
	ReportItemPerformance = "item_performance"
)

// ReportSnapshot é o resultado de um relatório mensal já fechado, armazenado no banco
type ReportSnapshot struct {
	ID        string          `json:"id"`
	Report    string          `json:"report"`
	Period    string          `json:"period"` // Período no formato yyyy-mm
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AvailablePeriods representa os períodos disponíveis na tabela de snapshots
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato yyyy-mm
	Years   []string `json:"years"`
	Months  []string `json:"months"`
}
