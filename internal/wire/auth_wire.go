package wire

import (
	"net/http"

	"wastecare-sesnet/internal/adaptor"
	"wastecare-sesnet/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public routes (tanpa auth middleware)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponseSuccess(w, "Welcome to the WasteCare SESNET Web App", nil)
	})

	r.Post("/users/register", authHandler.Register)
	r.Post("/users/login", authHandler.Login)
}
