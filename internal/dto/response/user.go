package response

import (
	"time"

	"wastecare-sesnet/internal/data/entity"
)

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Username  string          `json:"username"`
	Phone     string          `json:"phone"`
	District  string          `json:"district"`
	Role      entity.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
	// ProfileInfo carries the role profile for profile-bearing roles,
	// nil otherwise.
	ProfileInfo any `json:"profile_info"`
}

type UserList struct {
	Count int            `json:"count"`
	Data  []UserResponse `json:"data"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		Username:  user.Username,
		Phone:     user.Phone,
		District:  user.District,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
