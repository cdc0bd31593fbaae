package api

import (
	"context"
	"net/http"

	"github.com/EspacoVida/spa-portal/internal/models"
)

func (c *Client) ListVouchersByUser(ctx context.Context, userID string) ([]models.Voucher, error) {
	var vouchers []models.Voucher
	if err := c.get(ctx, "/users/"+userID+"/vouchers", nil, &vouchers); err != nil {
		return nil, err
	}
	return vouchers, nil
}

func (c *Client) ActivateVoucher(ctx context.Context, id uint) (*models.Voucher, error) {
	var v models.Voucher
	if err := c.do(ctx, http.MethodPatch, "/vouchers/"+itoa(id)+"/activate", nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
