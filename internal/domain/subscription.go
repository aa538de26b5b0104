package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusPaused   SubscriptionStatus = "paused"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
)

// Intervalos de cobrança aceitos pelo normalizador de preços
const (
	IntervalDay   = "day"
	IntervalWeek  = "week"
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// Subscription representa uma assinatura sincronizada do provedor de cobrança
type Subscription struct {
	ID               string             `json:"id"`
	CustomerID       string             `json:"customer_id"`
	Status           SubscriptionStatus `json:"status"`
	StartedAt        *time.Time         `json:"started_at"`
	CanceledAt       *time.Time         `json:"canceled_at"`
	BillingInterval  string             `json:"billing_interval"`
	BillingFrequency int                `json:"billing_frequency"`
	PriceID          string             `json:"price_id"`
	Plan             PlanClassification `json:"plan"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// ActiveAt indica se a assinatura estava ativa no instante informado:
// started_at <= t e (canceled_at nulo ou canceled_at > t)
func (s *Subscription) ActiveAt(t time.Time) bool {
	if s.StartedAt == nil || s.StartedAt.After(t) {
		return false
	}

	return s.CanceledAt == nil || s.CanceledAt.After(t)
}

// PlanClassification é a classificação Grupo/Nível/Tier usada para agrupar assinaturas por plano
type PlanClassification struct {
	GLTKey      string `json:"glt_key,omitempty"`
	GroupID     string `json:"group_id"`
	GroupNumber int    `json:"group_number"`
	GroupName   string `json:"group_name,omitempty"`
	Level       int    `json:"level"`
	Tier        string `json:"tier"`
}

// Key retorna a chave GLT armazenada ou, na ausência dela, uma chave sintetizada
// a partir do número do grupo, do nível e do rótulo do tier
func (p PlanClassification) Key() string {
	if p.GLTKey != "" {
		return p.GLTKey
	}

	return fmt.Sprintf("G%d-L%d-%s", p.GroupNumber, p.Level, strings.ToUpper(strings.TrimSpace(p.Tier)))
}

// TierNumber extrai o número de um rótulo no formato "T<n>"
func (p PlanClassification) TierNumber() (int, error) {
	label := strings.ToUpper(strings.TrimSpace(p.Tier))
	if !strings.HasPrefix(label, "T") {
		return 0, fmt.Errorf("rótulo de tier inválido: %q", p.Tier)
	}

	n, err := strconv.Atoi(label[1:])
	if err != nil {
		return 0, fmt.Errorf("rótulo de tier inválido: %q", p.Tier)
	}

	return n, nil
}

// SubscriptionFilter restringe a busca de assinaturas no repositório
type SubscriptionFilter struct {
	GroupID *string
	Level   *int
}
