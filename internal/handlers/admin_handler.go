package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"community-backend/internal/middleware"
	"community-backend/internal/models"
	"community-backend/internal/repositories"
)

type AdminHandler struct {
	UserRepo      *repositories.UserRepository
	LoginLogRepo  *repositories.LoginLogRepository
	ActionLogRepo *repositories.AdminActionLogRepository
}

func NewAdminHandler(
	userRepo *repositories.UserRepository,
	loginLogRepo *repositories.LoginLogRepository,
	actionLogRepo *repositories.AdminActionLogRepository,
) *AdminHandler {
	return &AdminHandler{
		UserRepo:      userRepo,
		LoginLogRepo:  loginLogRepo,
		ActionLogRepo: actionLogRepo,
	}
}

// ListUsers returns accounts filtered by approval status and search term
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	filter := models.UserListFilter{
		ApprovalStatus: r.URL.Query().Get("status"),
		Search:         r.URL.Query().Get("search"),
		Limit:          limit,
		Offset:         offset,
	}

	users, total, err := h.UserRepo.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "Failed to fetch users: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"users":  users,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// Approve marks a pending account approved
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, models.ApprovalApproved, models.AdminActionApproveUser)
}

// Reject marks an account rejected; rejected accounts cannot log in
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, models.ApprovalRejected, models.AdminActionRejectUser)
}

func (h *AdminHandler) setApproval(w http.ResponseWriter, r *http.Request, status, action string) {
	admin, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || userID <= 0 {
		http.Error(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	target, err := h.UserRepo.GetByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if target.UserType == models.UserTypeAdmin {
		http.Error(w, "Cannot change approval of an admin account", http.StatusForbidden)
		return
	}

	if err := h.UserRepo.UpdateApprovalStatus(r.Context(), userID, status); err != nil {
		http.Error(w, "Failed to update approval status: "+err.Error(), http.StatusInternalServerError)
		return
	}

	h.ActionLogRepo.Create(r.Context(), &models.AdminActionLog{
		AdminUserID: admin.ID,
		Action:      action,
		TargetType:  "user",
		TargetID:    strconv.Itoa(userID),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user_id": userID,
		"status":  status,
	})
}

// LoginLogs returns recent login attempts
func (h *AdminHandler) LoginLogs(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginate(r)

	logs, err := h.LoginLogRepo.List(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, "Failed to fetch login logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"logs":   logs,
		"limit":  limit,
		"offset": offset,
	})
}

// ActionLogs returns the admin audit trail
func (h *AdminHandler) ActionLogs(w http.ResponseWriter, r *http.Request) {
	limit, offset := paginate(r)

	logs, err := h.ActionLogRepo.List(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, "Failed to fetch action logs: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"logs":   logs,
		"limit":  limit,
		"offset": offset,
	})
}

func paginate(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
