package handlers

import (
	"net/http"

	"community-backend/internal/middleware"
	"community-backend/internal/ws"
)

type WSHandler struct {
	Hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{Hub: hub}
}

// Connect upgrades an authenticated request to a websocket subscribed
// to help-post events
func (h *WSHandler) Connect(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ws.ServeWS(h.Hub, w, r, userID)
}
