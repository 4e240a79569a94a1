package models

import "time"

// Invitation statuses
const (
	InvitationPending = "pending"
	InvitationUsed    = "used"
	InvitationExpired = "expired"
)

// Invitation is a single-use registration code bound to an inviter
type Invitation struct {
	ID             int        `json:"id"`
	InvitationCode string     `json:"invitation_code"`
	InvitedName    string     `json:"invited_name"`
	InvitedEmail   string     `json:"invited_email,omitempty"`
	InvitedPhone   string     `json:"invited_phone,omitempty"`
	InvitedBy      int        `json:"invited_by"`
	InviterName    string     `json:"inviter_name,omitempty"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expires_at"`
	UsedBy         *int       `json:"used_by,omitempty"`
	UsedAt         *time.Time `json:"used_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// EffectiveStatus evaluates expiry lazily: a pending invitation past its
// expiry reads as expired without a background sweeper
func (i *Invitation) EffectiveStatus(now time.Time) string {
	if i.Status == InvitationPending && now.After(i.ExpiresAt) {
		return InvitationExpired
	}
	return i.Status
}

// CreateInvitationRequest is the payload for POST /api/invitations
type CreateInvitationRequest struct {
	InvitedName  string `json:"invited_name"`
	InvitedEmail string `json:"invited_email,omitempty"`
	InvitedPhone string `json:"invited_phone,omitempty"`
}
