package models

import "time"

// UserAccount represents a registered community member account
// Flow flags drive the onboarding pipeline (intro -> profile -> completed)
type UserAccount struct {
	ID                    int        `json:"id"`
	FullName              string     `json:"full_name"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone"`
	PasswordHash          string     `json:"-"`
	UserType              string     `json:"user_type"` // member, admin
	ApprovalStatus        string     `json:"approval_status"`
	CreatedViaInvitation  bool       `json:"created_via_invitation"`
	IntroCompleted        bool       `json:"intro_completed"`
	QuestionsCompleted    bool       `json:"questions_completed"`
	ProfileCompleted      bool       `json:"profile_completed"`
	ProfileCompletionStep string     `json:"profile_completion_step"`
	Gender                string     `json:"gender"`
	IsMarried             string     `json:"isMarried"`
	HasChildren           string     `json:"hasChildren"`
	MarriageType          string     `json:"marriageType"`
	Role                  string     `json:"role"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	LastLoginAt           *time.Time `json:"last_login_at,omitempty"`
}

// Approval status values
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// User type values
const (
	UserTypeMember = "member"
	UserTypeAdmin  = "admin"
)

// Profile completion steps, in pipeline order
const (
	StepMemberDetails    = "member_details"
	StepSpouseDetails    = "spouse_details"
	StepChildrenDetails  = "children_details"
	StepMemberFamilyTree = "member_family_tree"
	StepSpouseFamilyTree = "spouse_family_tree"
	StepCompleted        = "completed"
)

// RegisterRequest is the payload for POST /api/register
type RegisterRequest struct {
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CountryCode    string `json:"country_code"`
	Password       string `json:"password"`
	InvitationCode string `json:"invitation_code,omitempty"`
}

// LoginRequest is the payload for POST /api/login
type LoginRequest struct {
	Identifier string `json:"identifier"` // email or phone
	Password   string `json:"password"`
}

// AuthResponse is returned on successful register/login
type AuthResponse struct {
	SessionToken string       `json:"session_token"`
	User         *UserAccount `json:"user"`
}

// UserListFilter narrows admin user listings
type UserListFilter struct {
	ApprovalStatus string
	Search         string
	Limit          int
	Offset         int
}
