package paddledomain

import (
	"strconv"
	"strings"
	"time"
)

// Estruturas mínimas dos objetos da API de Billing do Paddle. Só os campos
// usados na sincronização são decodificados.

type BillingCycle struct {
	Interval  string `json:"interval"`
	Frequency int    `json:"frequency"`
}

type Money struct {
	Amount       *string `json:"amount"`
	CurrencyCode string  `json:"currency_code"`
}

type Product struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	TaxCategory string     `json:"tax_category"`
	Status      string     `json:"status"`
	CustomData  CustomData `json:"custom_data"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Price struct {
	ID           string        `json:"id"`
	ProductID    string        `json:"product_id"`
	Description  string        `json:"description"`
	Name         *string       `json:"name"`
	BillingCycle *BillingCycle `json:"billing_cycle"`
	UnitPrice    Money         `json:"unit_price"`
	Status       string        `json:"status"`
	CustomData   CustomData    `json:"custom_data"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type Customer struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SubscriptionItem struct {
	Status   string `json:"status"`
	Quantity int    `json:"quantity"`
	Price    Price  `json:"price"`
}

type Subscription struct {
	ID           string             `json:"id"`
	Status       string             `json:"status"`
	CustomerID   string             `json:"customer_id"`
	StartedAt    *time.Time         `json:"started_at"`
	CanceledAt   *time.Time         `json:"canceled_at"`
	BillingCycle BillingCycle       `json:"billing_cycle"`
	Items        []SubscriptionItem `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type Totals struct {
	Total      *string `json:"total"`
	GrandTotal *string `json:"grand_total"`
	Earnings   *string `json:"earnings"`
}

type TransactionLineItem struct {
	ID       string `json:"id"`
	PriceID  string `json:"price_id"`
	Quantity int    `json:"quantity"`
	Totals   Totals `json:"totals"`
}

type TransactionDetails struct {
	Totals    Totals                `json:"totals"`
	LineItems []TransactionLineItem `json:"line_items"`
}

type Transaction struct {
	ID             string             `json:"id"`
	Status         string             `json:"status"`
	CustomerID     *string            `json:"customer_id"`
	SubscriptionID *string            `json:"subscription_id"`
	CurrencyCode   string             `json:"currency_code"`
	BilledAt       *time.Time         `json:"billed_at"`
	Details        TransactionDetails `json:"details"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// CustomData é o objeto livre custom_data do Paddle. Os valores podem chegar
// como texto ou número, dependendo de quem cadastrou o preço.
type CustomData map[string]any

func (c CustomData) String(key string) string {
	switch v := c[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Int retorna o valor inteiro da chave e false quando ausente ou inválido
func (c CustomData) Int(key string) (int, bool) {
	switch v := c[key].(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
