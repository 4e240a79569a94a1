package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"community-backend/internal/services"
)

type ReferenceHandler struct {
	ReferenceService *services.ReferenceService
}

func NewReferenceHandler(referenceService *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{ReferenceService: referenceService}
}

// List returns every item of a reference kind (kulams, kula deivams,
// kaanis, degrees, departments, job types)
func (h *ReferenceHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]
	if !services.IsKnownKind(kind) {
		http.Error(w, "Unknown reference kind: "+kind, http.StatusNotFound)
		return
	}

	items, err := h.ReferenceService.List(r.Context(), kind)
	if err != nil {
		http.Error(w, "Failed to fetch reference data: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"kind":  kind,
		"items": items,
	})
}

// Children returns items of a dependent kind scoped to a parent value,
// e.g. kaanis under a kula deivam, or departments under a degree
func (h *ReferenceHandler) Children(w http.ResponseWriter, r *http.Request) {
	kind := mux.Vars(r)["kind"]
	if !services.IsKnownKind(kind) {
		http.Error(w, "Unknown reference kind: "+kind, http.StatusNotFound)
		return
	}

	parent := r.URL.Query().Get("parent")
	items, err := h.ReferenceService.Children(r.Context(), kind, parent)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"kind":   kind,
		"parent": parent,
		"items":  items,
	})
}
