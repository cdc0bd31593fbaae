package api

import (
	"context"

	"github.com/EspacoVida/spa-portal/internal/models"
)

// GetUser busca o perfil do usuário. A sessão só carrega id e papel;
// nome, e-mail e foto vêm daqui.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := c.get(ctx, "/users/"+id, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
