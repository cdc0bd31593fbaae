package api

import (
	"context"
	"net/http"

	"github.com/EspacoVida/spa-portal/internal/models"
)

func (c *Client) GetAnamnesisByUser(ctx context.Context, userID string) (*models.AnamnesisRecord, error) {
	var rec models.AnamnesisRecord
	if err := c.get(ctx, "/users/"+userID+"/anamnesis", nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) CreateAnamnesis(ctx context.Context, rec *models.AnamnesisRecord) (*models.AnamnesisRecord, error) {
	var saved models.AnamnesisRecord
	if err := c.do(ctx, http.MethodPost, "/anamnesis", rec, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (c *Client) UpdateAnamnesis(ctx context.Context, id uint, rec *models.AnamnesisRecord) (*models.AnamnesisRecord, error) {
	var saved models.AnamnesisRecord
	if err := c.do(ctx, http.MethodPut, "/anamnesis/"+itoa(id), rec, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
