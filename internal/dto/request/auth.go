package request

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	Phone    string `json:"phone" validate:"required,min=10,max=15"`
	District string `json:"district" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin customer enterprise builder supplier"`
	Profile  ProfileForm
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
