package response

import (
	"time"

	"wastecare-sesnet/internal/data/entity"
)

type RegisterResponse struct {
	UserID    string          `json:"user_id"`
	Role      entity.UserRole `json:"role"`
	ProfileID string          `json:"profile_id,omitempty"`
}

type AuthResponse struct {
	UserID      string          `json:"user_id"`
	Role        entity.UserRole `json:"role"`
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
}
