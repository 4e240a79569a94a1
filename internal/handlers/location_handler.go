package handlers

import (
	"encoding/json"
	"net/http"

	"community-backend/internal/services"
)

type LocationHandler struct {
	LocationService *services.LocationService
}

func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{LocationService: locationService}
}

// Districts returns the district list for address forms
func (h *LocationHandler) Districts(w http.ResponseWriter, r *http.Request) {
	districts, err := h.LocationService.Districts(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch districts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"districts": districts})
}

// PostOffices returns post offices for a PIN code
func (h *LocationHandler) PostOffices(w http.ResponseWriter, r *http.Request) {
	pin := r.URL.Query().Get("pin_code")
	offices, err := h.LocationService.PostOffices(r.Context(), pin)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"pin_code":     pin,
		"post_offices": offices,
	})
}
