package adaptor

import (
	"net/http"

	"wastecare-sesnet/internal/usecase"
	"wastecare-sesnet/pkg/apperr"
	"wastecare-sesnet/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Profile: NewProfileHandler(service.Profile, log),
		Admin:   NewAdminHandler(service.Approval, log),
	}
}

// writeError maps the stable error kinds to HTTP responses. Internal
// causes are logged, never exposed.
func writeError(w http.ResponseWriter, log *zap.Logger, operation string, err error) {
	e := apperr.From(err)

	switch e.Kind {
	case apperr.KindValidation:
		var fields any
		if len(e.Fields) > 0 {
			fields = e.Fields
		}
		utils.ResponseBadRequest(w, e.Message, fields)

	case apperr.KindConflict:
		utils.ResponseConflict(w, e.Message)

	case apperr.KindNotFound:
		utils.ResponseNotFound(w, e.Message)

	case apperr.KindUnauthorized:
		utils.ResponseUnauthorized(w, e.Message)

	case apperr.KindForbidden:
		utils.ResponseForbidden(w, e.Message)

	case apperr.KindUpload:
		log.Error("Upload failed during "+operation, zap.Error(err))
		utils.ResponseBadGateway(w, e.Message)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
