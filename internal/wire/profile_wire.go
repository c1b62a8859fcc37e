package wire

import (
	"wastecare-sesnet/internal/adaptor"
	"wastecare-sesnet/pkg/middleware"
	"wastecare-sesnet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Purchaser's guide: approved profiles only
	r.Get("/"+kindPattern, profileHandler.ListApproved)
	r.Get("/"+kindPattern+"/{id}", profileHandler.GetByID)

	// ==================== PROTECTED ROUTES ====================
	auth := middleware.Auth(tokens, log)
	r.With(auth).Get("/"+kindPattern+"/me", profileHandler.GetOwn)
	r.With(auth).Put("/"+kindPattern+"/update/{id}", profileHandler.Update)
}
