package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"community-backend/internal/middleware"
	"community-backend/internal/models"
	"community-backend/internal/repositories"
	"community-backend/internal/services"
)

type FeatureSwitchHandler struct {
	SwitchService *services.FeatureSwitchService
	ActionLogRepo *repositories.AdminActionLogRepository
}

func NewFeatureSwitchHandler(switchService *services.FeatureSwitchService, actionLogRepo *repositories.AdminActionLogRepository) *FeatureSwitchHandler {
	return &FeatureSwitchHandler{SwitchService: switchService, ActionLogRepo: actionLogRepo}
}

// GetAll is public so the client can hide disabled features before login
func (h *FeatureSwitchHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	switches := h.SwitchService.GetAll(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"switches": switches})
}

// Update toggles one switch. Admin only; the change is audit logged
func (h *FeatureSwitchHandler) Update(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	key := mux.Vars(r)["key"]
	if _, known := models.DefaultFeatureSwitches[key]; !known {
		http.Error(w, "Unknown feature switch: "+key, http.StatusNotFound)
		return
	}

	var req models.UpdateFeatureSwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.SwitchService.Update(r.Context(), key, req.Enabled, admin.ID); err != nil {
		http.Error(w, "Failed to update feature switch: "+err.Error(), http.StatusInternalServerError)
		return
	}

	details := "disabled"
	if req.Enabled {
		details = "enabled"
	}
	h.ActionLogRepo.Create(r.Context(), &models.AdminActionLog{
		AdminUserID: admin.ID,
		Action:      models.AdminActionUpdateSwitch,
		TargetType:  "feature_switch",
		TargetID:    key,
		Details:     details,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"key":     key,
		"enabled": req.Enabled,
	})
}
