package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"community-backend/internal/middleware"
	"community-backend/internal/models"
	"community-backend/internal/services"
)

type InvitationHandler struct {
	InvitationService *services.InvitationService
}

func NewInvitationHandler(invitationService *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{InvitationService: invitationService}
}

// Create issues an invitation code and delivers it by email or SMS.
// Only approved members may invite
func (h *InvitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if user.ApprovalStatus != models.ApprovalApproved {
		http.Error(w, "Only approved members can send invitations", http.StatusForbidden)
		return
	}

	var req models.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	invitation, err := h.InvitationService.Create(r.Context(), user, &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(invitation)
}

// List returns the caller's invitations with expiry applied
func (h *InvitationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	invitations, err := h.InvitationService.ListByInviter(r.Context(), user.ID)
	if err != nil {
		http.Error(w, "Failed to fetch invitations: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"invitations": invitations})
}

// Delete cancels one of the caller's pending invitations
func (h *InvitationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid invitation id", http.StatusBadRequest)
		return
	}

	if err := h.InvitationService.Delete(r.Context(), id, user.ID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}

// Validate checks an invitation code before registration. Public:
// the registration page calls this while the visitor has no session
func (h *InvitationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	invitation, err := h.InvitationService.Validate(r.Context(), code)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"valid":        true,
		"invited_name": invitation.InvitedName,
		"expires_at":   invitation.ExpiresAt,
	})
}
