package api

import (
	"context"

	"github.com/EspacoVida/spa-portal/internal/models"
)

func (c *Client) ListPlans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if err := c.get(ctx, "/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}
