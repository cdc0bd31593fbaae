package models

import "time"

type VoucherType string

const (
	VoucherFreeTreatment VoucherType = "FREE_TREATMENT"
	VoucherFreeMonth     VoucherType = "FREE_MONTH"
	VoucherDiscount      VoucherType = "DISCOUNT"
)

type Voucher struct {
	ID     uint   `json:"id"`
	UserID string `json:"user_id"`

	Type VoucherType `json:"type"`

	// Escopo: serviço específico, qualquer serviço, ou um plano.
	ServiceID  *uint `json:"service_id"`
	PlanID     *uint `json:"plan_id"`
	AnyService bool  `json:"any_service"`

	DiscountPercent float64 `json:"discount_percent"`

	Used   bool       `json:"used"`
	UsedAt *time.Time `json:"used_at"`

	ExpiresAt *time.Time `json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
}
