package api

import (
	"context"
	"net/http"

	"github.com/EspacoVida/spa-portal/internal/models"
)

func (c *Client) GetSubscriptionByUser(ctx context.Context, userID string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.get(ctx, "/users/"+userID+"/subscription", nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

type CreateSubscriptionInput struct {
	PlanID uint `json:"plan_id"`
}

func (c *Client) CreateSubscription(ctx context.Context, in CreateSubscriptionInput) (*models.Subscription, error) {
	var sub models.Subscription
	if err := c.do(ctx, http.MethodPost, "/subscriptions", in, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *Client) CancelSubscription(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPatch, subscriptionPath(id, "cancel"), nil, nil)
}

func (c *Client) PauseSubscription(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPatch, subscriptionPath(id, "pause"), nil, nil)
}

func (c *Client) ReactivateSubscription(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPatch, subscriptionPath(id, "reactivate"), nil, nil)
}

type ChangePlanInput struct {
	PlanID uint `json:"plan_id"`
}

func (c *Client) ChangeSubscriptionPlan(ctx context.Context, id uint, in ChangePlanInput) error {
	return c.do(ctx, http.MethodPatch, subscriptionPath(id, "plan"), in, nil)
}

func subscriptionPath(id uint, action string) string {
	return "/subscriptions/" + itoa(id) + "/" + action
}
