package ws

import (
	"encoding/json"
	"log"

	"community-backend/internal/models"
)

// Hub fans help-post events out to connected clients
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run owns the client set; all membership changes go through the channels
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer; drop it rather than block the hub
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastEvent serializes and queues an event for all clients
func (h *Hub) BroadcastEvent(event models.HelpPostEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal websocket event: %v", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		log.Println("Websocket broadcast queue full, dropping event")
	}
}
