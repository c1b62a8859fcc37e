package adaptor

import (
	"net/http"
	"strconv"

	"wastecare-sesnet/internal/usecase"
	"wastecare-sesnet/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.ApprovalService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.ApprovalService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// Pending handles GET /admin/{kind}/pending
func (h *AdminHandler) Pending(w http.ResponseWriter, r *http.Request) {
	kind, ok := profileKind(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found")
		return
	}

	list, err := h.service.ListPending(r.Context(), kind)
	if err != nil {
		writeError(w, h.log, "list pending profiles", err)
		return
	}

	utils.ResponseSuccess(w, "Pending profiles retrieved", list)
}

// SetApproval handles PATCH /admin/{kind}/{id}/approval
func (h *AdminHandler) SetApproval(w http.ResponseWriter, r *http.Request) {
	kind, ok := profileKind(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found")
		return
	}

	if err := parseForm(r); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	values, present := formValues(r, "approved")
	if !present || len(values) == 0 {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"approved": "This field is required"})
		return
	}
	approved, err := strconv.ParseBool(values[0])
	if err != nil {
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{"approved": "Must be a boolean"})
		return
	}

	adminID, _ := utils.GetUserIDFromContext(r.Context())

	if err := h.service.SetApproval(r.Context(), kind, chi.URLParam(r, "id"), adminID, approved); err != nil {
		writeError(w, h.log, "set approval", err)
		return
	}

	action := "rejected"
	if approved {
		action = "approved"
	}
	utils.ResponseSuccess(w, "Profile "+action+" successfully.", nil)
}

// Delete handles DELETE /admin/{kind}/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, ok := profileKind(r)
	if !ok {
		utils.ResponseNotFound(w, "Not found")
		return
	}

	if err := h.service.Delete(r.Context(), kind, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, "delete profile", err)
		return
	}

	utils.ResponseSuccess(w, "Profile deleted successfully.", nil)
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeError(w, h.log, "list users", err)
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", list)
}
