package models

import "time"

type Role string

const (
	RoleClient  Role = "CLIENT"
	RoleManager Role = "MANAGER"
)

// User é dono do provedor de identidade; o core só lê.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  Role   `json:"role"`

	ProfileImageURL string `json:"profile_image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
