package services

import (
	"community-backend/internal/models"
)

// Flow states computed from the account's onboarding flags
const (
	FlowIntroRequired   = "intro_required"
	FlowProfileRequired = "profile_required"
	FlowCompleted       = "completed"
)

// Destination page for each flow state
var flowDestinations = map[string]string{
	FlowIntroRequired:   "/intro-questions",
	FlowProfileRequired: "/profile-completion",
	FlowCompleted:       "/dashboard",
}

// NextStep computes the user's correct pipeline stage. Invited users go
// through the intro questionnaire first; direct registrations skip it
func NextStep(u *models.UserAccount) string {
	switch {
	case u.CreatedViaInvitation && (!u.IntroCompleted || !u.QuestionsCompleted):
		return FlowIntroRequired
	case u.CreatedViaInvitation && u.ProfileCompletionStep != models.StepCompleted:
		return FlowProfileRequired
	case !u.CreatedViaInvitation && !u.ProfileCompleted:
		return FlowProfileRequired
	default:
		return FlowCompleted
	}
}

// FlowStatus is the answer to a page's "am I the right place" check
type FlowStatus struct {
	State      string `json:"state"`
	RedirectTo string `json:"redirect_to,omitempty"`
	Allowed    bool   `json:"allowed"`
}

// CheckPage reports whether the given page may be shown in the computed
// state. The state's own destination page never redirects (no loops);
// every other page redirects to the destination
func CheckPage(u *models.UserAccount, page string) FlowStatus {
	state := NextStep(u)
	dest := flowDestinations[state]

	if page == "" || page == dest {
		return FlowStatus{State: state, Allowed: true}
	}

	// Completed users may visit any page except the onboarding ones
	if state == FlowCompleted && page != flowDestinations[FlowIntroRequired] && page != flowDestinations[FlowProfileRequired] {
		return FlowStatus{State: state, Allowed: true}
	}

	return FlowStatus{State: state, Allowed: false, RedirectTo: dest}
}
