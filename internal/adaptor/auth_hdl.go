package adaptor

import (
	"net/http"

	"wastecare-sesnet/internal/dto/request"
	"wastecare-sesnet/internal/usecase"
	"wastecare-sesnet/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /users/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profileForm, problems := parseProfileForm(r)
	if len(problems) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", problems)
		return
	}

	req := request.RegisterRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Username: r.FormValue("username"),
		Phone:    r.FormValue("phone"),
		District: r.FormValue("district"),
		Role:     r.FormValue("role"),
		Profile:  profileForm,
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, "register", err)
		return
	}

	utils.ResponseCreated(w, "Registered successfully!", resp)
}

// Login handles POST /users/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	req := request.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, "login", err)
		return
	}

	utils.ResponseSuccess(w, "User logged in successfully!", resp)
}
