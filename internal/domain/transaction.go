package domain

import "time"

type TransactionStatus string

const (
	TransactionStatusDraft     TransactionStatus = "draft"
	TransactionStatusReady     TransactionStatus = "ready"
	TransactionStatusBilled    TransactionStatus = "billed"
	TransactionStatusPaid      TransactionStatus = "paid"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCanceled  TransactionStatus = "canceled"
	TransactionStatusPastDue   TransactionStatus = "past_due"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction representa uma cobrança. Valores em unidades mínimas (centavos).
// Earnings é nil quando o valor armazenado está ausente ou não é numérico.
type Transaction struct {
	ID             string            `json:"id"`
	SubscriptionID *string           `json:"subscription_id"`
	CustomerID     string            `json:"customer_id"`
	Status         TransactionStatus `json:"status"`
	BilledAt       *time.Time        `json:"billed_at"`
	Earnings       *int64            `json:"earnings"`
	Total          *int64            `json:"total"`
	CurrencyCode   string            `json:"currency_code"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// EarningsOrZero retorna o valor de earnings ou zero quando ausente
func (t *Transaction) EarningsOrZero() int64 {
	if t.Earnings == nil {
		return 0
	}
	return *t.Earnings
}

// TransactionFilter restringe a busca de transações no repositório
type TransactionFilter struct {
	Statuses             []TransactionStatus
	BilledFrom           *time.Time
	BilledBefore         *time.Time
	OnlyWithSubscription bool
}

// TransactionLineItem é um item de uma transação, ligado ao catálogo pelo preço
type TransactionLineItem struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	CustomerID    string    `json:"customer_id"`
	PriceID       string    `json:"price_id"`
	Quantity      int       `json:"quantity"`
	Total         *int64    `json:"total"`
	CreatedAt     time.Time `json:"created_at"`
}
