// internal/wire/wire.go
package wire

import (
	"net/http"
	"time"

	"wastecare-sesnet/internal/adaptor"
	"wastecare-sesnet/internal/data/repository"
	"wastecare-sesnet/internal/usecase"
	"wastecare-sesnet/pkg/blob"
	"wastecare-sesnet/pkg/middleware"
	"wastecare-sesnet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// kindPattern keeps the profile-kind routes a closed set at the router.
const kindPattern = "{kind:enterprises|builders|suppliers}"

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, uploader blob.Uploader, config *utils.Config, logger *zap.Logger) *App {
	tokens := utils.NewTokenManager(config.JWT.Secret, time.Duration(config.JWT.ExpiryMinutes)*time.Minute)

	service := usecase.NewService(repo, uploader, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	tokens *utils.TokenManager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	if config.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.Handle("/metrics", promhttp.Handler())
	}

	// Apply routes
	wireAuth(r, handler.Auth)
	wireProfile(r, handler.Profile, tokens, logger)
	wireAdmin(r, handler.Admin, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
