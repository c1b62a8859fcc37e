package adaptor

import (
	"net/http"

	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/internal/usecase"
	"wastecare-sesnet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log,
	}
}

func profileKind(r *http.Request) (entity.ProfileKind, bool) {
	return entity.ParseProfileKind(chi.URLParam(r, "kind"))
}

// ListApproved handles GET /{kind} (public)
func (h *ProfileHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	kind, ok := profileKind(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found")
		return
	}

	list, err := h.service.ListApproved(r.Context(), kind)
	if err != nil {
		writeError(w, h.log, "list approved profiles", err)
		return
	}

	utils.ResponseSuccess(w, "Approved profiles retrieved", list)
}

// GetByID handles GET /{kind}/{id} (public, approved only)
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	kind, ok := profileKind(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found")
		return
	}

	profile, err := h.service.GetApproved(r.Context(), kind, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, "get profile", err)
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", profile)
}

// GetOwn handles GET /{kind}/me
func (h *ProfileHandler) GetOwn(w http.ResponseWriter, r *http.Request) {
	kind, ok := profileKind(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found")
		return
	}

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	callerRole, _ := utils.GetRoleFromContext(r.Context())

	profile, err := h.service.GetOwn(r.Context(), kind, callerID, callerRole)
	if err != nil {
		writeError(w, h.log, "get own profile", err)
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", profile)
}

// Update handles PUT /{kind}/update/{id}
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind, ok := profileKind(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found")
		return
	}

	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	callerRole, _ := utils.GetRoleFromContext(r.Context())

	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	form, problems := parseProfileForm(r)
	if len(problems) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", problems)
		return
	}

	err := h.service.Update(r.Context(), kind, chi.URLParam(r, "id"), callerID, callerRole, &form)
	if err != nil {
		writeError(w, h.log, "update profile", err)
		return
	}

	utils.ResponseSuccess(w, "Profile updated successfully.", nil)
}
