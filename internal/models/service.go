package models

import "time"

type ServiceCategory string

const (
	CategoryFacial   ServiceCategory = "FACIAL"
	CategoryCorporal ServiceCategory = "CORPORAL"
	CategoryMassagem ServiceCategory = "MASSAGEM"
	CategoryCombo    ServiceCategory = "COMBO"
)

type Service struct {
	ID uint `json:"id"`

	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    ServiceCategory `json:"category"`
	DurationMin int             `json:"duration_min"`
	Price       float64         `json:"price"`
	Active      bool            `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
