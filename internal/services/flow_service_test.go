package services

import (
	"testing"

	"community-backend/internal/models"
)

func TestNextStep(t *testing.T) {
	tests := []struct {
		name string
		user models.UserAccount
		want string
	}{
		{
			name: "invited user before intro",
			user: models.UserAccount{CreatedViaInvitation: true},
			want: FlowIntroRequired,
		},
		{
			name: "invited user with intro but unanswered questions",
			user: models.UserAccount{CreatedViaInvitation: true, IntroCompleted: true},
			want: FlowIntroRequired,
		},
		{
			name: "invited user mid profile",
			user: models.UserAccount{
				CreatedViaInvitation:  true,
				IntroCompleted:        true,
				QuestionsCompleted:    true,
				ProfileCompletionStep: models.StepMemberDetails,
			},
			want: FlowProfileRequired,
		},
		{
			name: "invited user fully done",
			user: models.UserAccount{
				CreatedViaInvitation:  true,
				IntroCompleted:        true,
				QuestionsCompleted:    true,
				ProfileCompletionStep: models.StepCompleted,
			},
			want: FlowCompleted,
		},
		{
			name: "direct registration skips intro",
			user: models.UserAccount{},
			want: FlowProfileRequired,
		},
		{
			name: "direct registration completed",
			user: models.UserAccount{ProfileCompleted: true},
			want: FlowCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStep(&tt.user); got != tt.want {
				t.Errorf("NextStep() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCheckPage(t *testing.T) {
	introUser := models.UserAccount{CreatedViaInvitation: true}
	completedUser := models.UserAccount{ProfileCompleted: true}

	tests := []struct {
		name         string
		user         *models.UserAccount
		page         string
		wantAllowed  bool
		wantRedirect string
	}{
		{
			name:        "destination page never redirects",
			user:        &introUser,
			page:        "/intro-questions",
			wantAllowed: true,
		},
		{
			name:         "wrong page redirects to destination",
			user:         &introUser,
			page:         "/dashboard",
			wantAllowed:  false,
			wantRedirect: "/intro-questions",
		},
		{
			name:        "empty page is an unconditional status query",
			user:        &introUser,
			page:        "",
			wantAllowed: true,
		},
		{
			name:        "completed user allowed on dashboard",
			user:        &completedUser,
			page:        "/dashboard",
			wantAllowed: true,
		},
		{
			name:        "completed user allowed on arbitrary pages",
			user:        &completedUser,
			page:        "/help-posts",
			wantAllowed: true,
		},
		{
			name:         "completed user blocked from onboarding pages",
			user:         &completedUser,
			page:         "/profile-completion",
			wantAllowed:  false,
			wantRedirect: "/dashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckPage(tt.user, tt.page)
			if got.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", got.Allowed, tt.wantAllowed)
			}
			if got.RedirectTo != tt.wantRedirect {
				t.Errorf("RedirectTo = %q, want %q", got.RedirectTo, tt.wantRedirect)
			}
		})
	}
}
