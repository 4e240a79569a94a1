package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"community-backend/internal/middleware"
	"community-backend/internal/models"
	"community-backend/internal/repositories"
	"community-backend/internal/services"
)

type HelpPostHandler struct {
	HelpPostService *services.HelpPostService
	HelpPostRepo    *repositories.HelpPostRepository
	ActionLogRepo   *repositories.AdminActionLogRepository
}

func NewHelpPostHandler(helpPostService *services.HelpPostService, helpPostRepo *repositories.HelpPostRepository, actionLogRepo *repositories.AdminActionLogRepository) *HelpPostHandler {
	return &HelpPostHandler{HelpPostService: helpPostService, HelpPostRepo: helpPostRepo, ActionLogRepo: actionLogRepo}
}

// Handle is the write endpoint for help posts. The action field selects
// create, like, or comment
func (h *HelpPostHandler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.HelpPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch req.Action {
	case "create":
		post, err := h.HelpPostService.Create(r.Context(), user, &req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(post)

	case "like":
		count, liked, err := h.HelpPostService.ToggleLike(r.Context(), user.ID, req.PostID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"post_id":    req.PostID,
			"like_count": count,
			"liked":      liked,
		})

	case "comment":
		comment, err := h.HelpPostService.AddComment(r.Context(), user, req.PostID, req.Comment)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(comment)

	default:
		http.Error(w, "Unknown action: "+req.Action, http.StatusBadRequest)
	}
}

// List returns help posts newest first with like and comment counts
func (h *HelpPostHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	posts, err := h.HelpPostRepo.List(r.Context(), user.ID, limit, offset)
	if err != nil {
		http.Error(w, "Failed to fetch help posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"posts":  posts,
		"limit":  limit,
		"offset": offset,
	})
}

// Get returns a single post with its comments
func (h *HelpPostHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	post, err := h.HelpPostRepo.Get(r.Context(), id, user.ID)
	if err != nil {
		http.Error(w, "Help post not found", http.StatusNotFound)
		return
	}

	comments, err := h.HelpPostRepo.ListComments(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to fetch comments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"post":     post,
		"comments": comments,
	})
}

// Update edits the caller's own post
func (h *HelpPostHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	var post models.HelpPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	post.ID = id

	if err := h.HelpPostService.Update(r.Context(), user.ID, &post); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
}

// Delete removes the caller's own post; admins may remove any post
func (h *HelpPostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "Invalid post id", http.StatusBadRequest)
		return
	}

	// Grab ownership before deleting so admin moderation can be audited
	post, err := h.HelpPostRepo.Get(r.Context(), id, user.ID)
	if err != nil {
		http.Error(w, "Help post not found", http.StatusNotFound)
		return
	}

	if err := h.HelpPostService.Delete(r.Context(), user, id); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	if user.UserType == models.UserTypeAdmin && post.UserID != user.ID {
		h.ActionLogRepo.Create(r.Context(), &models.AdminActionLog{
			AdminUserID: user.ID,
			Action:      models.AdminActionDeletePost,
			TargetType:  "help_post",
			TargetID:    strconv.Itoa(id),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}
