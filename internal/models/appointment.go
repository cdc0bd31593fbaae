package models

import "time"

type Appointment struct {
	ID     uint   `json:"id"`
	UserID string `json:"user_id"`

	ServiceID uint    `json:"service_id"`
	Service   Service `json:"service"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Status e origem são observados, nunca calculados aqui
	// (enums em internal/domain/appointment).
	Status string `json:"status"`
	Origin string `json:"origin"`

	PaymentStatus string `json:"payment_status"`

	VoucherID *uint `json:"voucher_id"`

	Notes        string     `json:"notes"`
	CancelReason string     `json:"cancel_reason"`
	CancelledAt  *time.Time `json:"cancelled_at"`
	CompletedAt  *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
