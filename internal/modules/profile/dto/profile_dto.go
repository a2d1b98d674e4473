package dto

import (
	"time"

	"github.com/programandoparacristo/plataforma/internal/entity"
)

type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Bio      *string `json:"bio" binding:"omitempty,max=500"`
	Username *string `json:"username" binding:"omitempty,min=3,max=30,alphanum"`
	Avatar   *string `json:"avatar" binding:"omitempty,url"`
}

// PublicProfile is the unauthenticated view of a user: no email, no
// account status.
type PublicProfile struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Role         entity.Role         `json:"role"`
	Username     *string             `json:"username,omitempty"`
	Avatar       *string             `json:"avatar,omitempty"`
	Bio          *string             `json:"bio,omitempty"`
	Gamification entity.Gamification `json:"gamification"`
	CreatedAt    time.Time           `json:"createdAt"`
}
