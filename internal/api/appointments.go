package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/EspacoVida/spa-portal/internal/models"
)

func (c *Client) ListAppointmentsByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	var aps []models.Appointment
	if err := c.get(ctx, "/users/"+userID+"/appointments", nil, &aps); err != nil {
		return nil, err
	}
	return aps, nil
}

type CreateAppointmentInput struct {
	ServiceID uint      `json:"service_id"`
	StartTime time.Time `json:"start_time"`
	Origin    string    `json:"origin"`
	VoucherID *uint     `json:"voucher_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

func (c *Client) CreateAppointment(ctx context.Context, in CreateAppointmentInput) (*models.Appointment, error) {
	var ap models.Appointment
	if err := c.do(ctx, http.MethodPost, "/appointments", in, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

type CancelAppointmentInput struct {
	Reason string `json:"reason,omitempty"`
}

func (c *Client) CancelAppointment(ctx context.Context, id uint, in CancelAppointmentInput) error {
	return c.do(ctx, http.MethodPatch, "/appointments/"+itoa(id)+"/cancel", in, nil)
}

type RescheduleAppointmentInput struct {
	StartTime time.Time `json:"start_time"`
}

func (c *Client) RescheduleAppointment(ctx context.Context, id uint, in RescheduleAppointmentInput) (*models.Appointment, error) {
	var ap models.Appointment
	if err := c.do(ctx, http.MethodPatch, "/appointments/"+itoa(id)+"/reschedule", in, &ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
