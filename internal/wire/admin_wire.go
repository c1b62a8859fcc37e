package wire

import (
	"wastecare-sesnet/internal/adaptor"
	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/pkg/middleware"
	"wastecare-sesnet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	tokens *utils.TokenManager,
	log *zap.Logger,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Auth(tokens, log))
		r.Use(middleware.RequireRoles(log, string(entity.RoleAdmin)))

		r.Get("/users", adminHandler.ListUsers)
		r.Get("/"+kindPattern+"/pending", adminHandler.Pending)
		r.Patch("/"+kindPattern+"/{id}/approval", adminHandler.SetApproval)
		r.Delete("/"+kindPattern+"/{id}", adminHandler.Delete)
	})
}
