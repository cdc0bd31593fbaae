package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/EspacoVida/spa-portal/internal/models"
)

func (c *Client) ListServices(ctx context.Context, category, search string) ([]models.Service, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("query", search)
	}

	var services []models.Service
	if err := c.get(ctx, "/services", query, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *Client) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := c.get(ctx, fmt.Sprintf("/services/%d", id), nil, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}
