package models

import "time"

type PlanTier string

const (
	TierBronze PlanTier = "BRONZE"
	TierSilver PlanTier = "SILVER"
	TierGold   PlanTier = "GOLD"
)

type Plan struct {
	ID uint `json:"id"`

	Name  string   `json:"name"`
	Tier  PlanTier `json:"tier"`
	Price float64  `json:"price"`

	TreatmentsPerMonth int `json:"treatments_per_month"`
	TreatmentsPerWeek  int `json:"treatments_per_week"`

	// Tetos por categoria (chave = ServiceCategory). Vazio = sem teto.
	CategoryLimits map[string]int `json:"category_limits"`

	// Serviços inclusos no plano (pertinência por id).
	ServiceIDs []uint `json:"service_ids"`

	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Plan) Includes(serviceID uint) bool {
	for _, id := range p.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}
