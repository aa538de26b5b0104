package domain

// RevenuePeriod é uma linha do relatório de tendência de receita.
// TotalRevenue em unidades mínimas.
type RevenuePeriod struct {
	PeriodWindow
	TotalRevenue        int64   `json:"total_revenue"`
	NumTransactions     int     `json:"num_transactions"`
	AvgTransactionValue float64 `json:"avg_transaction_value"`
}

// MRRPeriod é uma linha do relatório de MRR. Valores de MRR na unidade da moeda.
type MRRPeriod struct {
	PeriodWindow
	ActiveSubs   int     `json:"active_subs"`
	NewSubs      int     `json:"new_subs"`
	CanceledSubs int     `json:"canceled_subs"`
	EstimatedMRR float64 `json:"estimated_mrr"`
	NewMRR       float64 `json:"new_mrr"`
	ChurnMRR     float64 `json:"churn_mrr"`
}

// ChurnPeriod é uma linha do relatório de churn de clientes
type ChurnPeriod struct {
	PeriodWindow
	StartingCustomers int     `json:"starting_customers"`
	CanceledCustomers int     `json:"canceled_customers"`
	ChurnRatePercent  float64 `json:"churn_rate_percent"`
}

// PlanPerformanceRequest são os parâmetros do relatório de desempenho por plano.
// Periods == 0 indica modo snapshot.
type PlanPerformanceRequest struct {
	PeriodType    PeriodType
	Periods       int
	FilterGroupID *string
	FilterLevel   *int
}

// PlanMetrics são as métricas de um balde GLT
type PlanMetrics struct {
	GLTKey       string  `json:"glt_key"`
	GroupID      string  `json:"group_id"`
	GroupNumber  int     `json:"group_number"`
	GroupName    string  `json:"group_name,omitempty"`
	Level        int     `json:"level"`
	Tier         string  `json:"tier"`
	ActiveSubs   int     `json:"active_subs"`
	NewSubs      int     `json:"new_subs"`
	CanceledSubs int     `json:"canceled_subs"`
	MRR          float64 `json:"mrr"`
}

// PlanTrendPoint é o consolidado de todos os baldes em um período
type PlanTrendPoint struct {
	PeriodWindow
	TotalActiveSubs int     `json:"total_active_subs"`
	TotalMRR        float64 `json:"total_mrr"`
}

// PlanPerformanceReport é o resultado do relatório de desempenho por plano
type PlanPerformanceReport struct {
	Details         []*PlanMetrics   `json:"details"`
	TotalActiveSubs int              `json:"total_active_subs"`
	TotalMRR        float64          `json:"total_mrr"`
	TrendData       []PlanTrendPoint `json:"trend_data,omitempty"`
}

// ItemPerformance é uma linha do relatório de desempenho de itens. Valores em unidades mínimas.
type ItemPerformance struct {
	ItemID        string   `json:"item_id"`
	ItemName      string   `json:"item_name"`
	ItemType      ItemType `json:"item_type"`
	TotalRevenue  int64    `json:"total_revenue"`
	UnitsSold     int      `json:"units_sold"`
	CustomerCount int      `json:"customer_count"`
	ARPU          int64    `json:"arpu"`
}
