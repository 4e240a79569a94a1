package models

import "time"

// RevokedToken records a session token invalidated by logout.
// JWTs stay valid until expiry, so logout blacklists the token ID
type RevokedToken struct {
	ID        int       `json:"id"`
	TokenID   string    `json:"token_id"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginLog records every login attempt, successful or not
type LoginLog struct {
	ID         int       `json:"id"`
	UserID     *int      `json:"user_id,omitempty"`
	Identifier string    `json:"identifier"`
	Success    bool      `json:"success"`
	IPAddress  string    `json:"ip_address,omitempty"`
	UserAgent  string    `json:"user_agent,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdminActionLog records privileged admin operations for audit
type AdminActionLog struct {
	ID          int       `json:"id"`
	AdminUserID int       `json:"admin_user_id"`
	AdminName   string    `json:"admin_name,omitempty"`
	Action      string    `json:"action"`
	TargetType  string    `json:"target_type,omitempty"`
	TargetID    string    `json:"target_id,omitempty"`
	Details     string    `json:"details,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Admin action types
const (
	AdminActionApproveUser   = "approve_user"
	AdminActionRejectUser    = "reject_user"
	AdminActionUpdateSwitch  = "update_feature_switch"
	AdminActionDeletePost    = "delete_help_post"
	AdminActionDeleteComment = "delete_help_post_comment"
)
