package domain

import "time"

type ItemType string

const (
	ItemTypeProduct      ItemType = "product"
	ItemTypeService      ItemType = "service"
	ItemTypeSubscription ItemType = "subscription"
	ItemTypeAddon        ItemType = "addon"
)

// IsTracked indica se o tipo de item entra no relatório de desempenho de itens
func (t ItemType) IsTracked() bool {
	return t == ItemTypeProduct || t == ItemTypeService
}

// Item é um item do catálogo (produto no Paddle)
type Item struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      ItemType  `json:"type"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Price liga um preço do provedor a um item do catálogo e à classificação de plano
type Price struct {
	ID               string             `json:"id"`
	ItemID           string             `json:"item_id"`
	Description      string             `json:"description"`
	UnitAmount       *int64             `json:"unit_amount"`
	CurrencyCode     string             `json:"currency_code"`
	BillingInterval  string             `json:"billing_interval"`
	BillingFrequency int                `json:"billing_frequency"`
	Plan             PlanClassification `json:"plan"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// Customer representa um cliente do provedor de cobrança
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlanGroup é o grupo de planos usado como filtro no relatório de desempenho de planos
type PlanGroup struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Name   string `json:"name"`
}
