package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"community-backend/internal/middleware"
	"community-backend/internal/models"
	"community-backend/internal/repositories"
	"community-backend/internal/services"
)

type ProfileCompletionHandler struct {
	ProfileService *services.ProfileService
	ProfileRepo    *repositories.ProfileRepository
	ChildRepo      *repositories.ChildRepository
	UserRepo       *repositories.UserRepository
}

func NewProfileCompletionHandler(
	profileService *services.ProfileService,
	profileRepo *repositories.ProfileRepository,
	childRepo *repositories.ChildRepository,
	userRepo *repositories.UserRepository,
) *ProfileCompletionHandler {
	return &ProfileCompletionHandler{
		ProfileService: profileService,
		ProfileRepo:    profileRepo,
		ChildRepo:      childRepo,
		UserRepo:       userRepo,
	}
}

// HandleStep is the single profile-completion endpoint. The step field
// selects which section to save, fetch, or finalize
func (h *ProfileCompletionHandler) HandleStep(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.ProfileCompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.ProfileService.HandleStep(r.Context(), user, &req)
	if err != nil {
		status := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Status reports per-section completion and the current step
func (h *ProfileCompletionHandler) Status(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	status, err := h.ProfileService.SectionStatus(r.Context(), user)
	if err != nil {
		http.Error(w, "Failed to fetch section status: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

// GetProfile returns the full saved profile: member and spouse details,
// children, and every family tree person
func (h *ProfileCompletionHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	member, err := h.ProfileRepo.GetMemberDetails(ctx, user.ID)
	if err != nil {
		http.Error(w, "Failed to fetch profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	spouse, err := h.ProfileRepo.GetSpouseDetails(ctx, user.ID)
	if err != nil {
		http.Error(w, "Failed to fetch profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	children, err := h.ChildRepo.ListByUser(ctx, user.ID)
	if err != nil {
		http.Error(w, "Failed to fetch profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	familyTree, err := h.ProfileRepo.ListFamilyTreePersons(ctx, user.ID, "")
	if err != nil {
		http.Error(w, "Failed to fetch profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":        user,
		"member":      member,
		"spouse":      spouse,
		"children":    children,
		"family_tree": familyTree,
	})
}

// UpdateBasics lets a member change name and phone after onboarding
func (h *ProfileCompletionHandler) UpdateBasics(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		http.Error(w, "Full name is required", http.StatusBadRequest)
		return
	}
	if req.Phone != "" {
		if err := services.ValidatePhone(req.Phone, ""); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	if err := h.UserRepo.UpdateBasics(r.Context(), user.ID, req.FullName, req.Phone); err != nil {
		http.Error(w, "Failed to update profile: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
}
