package models

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
	SubscriptionPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionPaused   SubscriptionStatus = "PAUSED"
)

// Subscription é a assinatura corrente do usuário. O backend garante
// no máximo uma corrente por usuário; o cliente nunca mescla várias.
type Subscription struct {
	ID     uint   `json:"id"`
	UserID string `json:"user_id"`

	PlanID uint `json:"plan_id"`
	Plan   Plan `json:"plan"`

	Status SubscriptionStatus `json:"status"`

	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	MinCommitmentEnd *time.Time `json:"min_commitment_end"`

	// Contadores do período corrente, calculados no servidor.
	UsedThisMonth      int `json:"used_this_month"`
	UsedThisWeek       int `json:"used_this_week"`
	RemainingThisMonth int `json:"remaining_this_month"`

	CanceledAt *time.Time `json:"canceled_at"`
	PausedAt   *time.Time `json:"paused_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
