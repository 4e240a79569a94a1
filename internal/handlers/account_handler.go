package handlers

import (
	"encoding/json"
	"net/http"

	"community-backend/internal/middleware"
	"community-backend/internal/services"
)

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// Me returns the authenticated account with its flow state attached
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":       user,
		"flow_state": services.NextStep(user),
	})
}

// FlowStatus answers a page's access check. The page query parameter is
// the client-side route asking whether it may render
func (h *AccountHandler) FlowStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	page := r.URL.Query().Get("page")
	status := services.CheckPage(user, page)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}
