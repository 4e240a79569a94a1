package services

import (
	"testing"

	"community-backend/internal/models"
)

func TestCalculateMarriageData(t *testing.T) {
	tests := []struct {
		marriageType string
		want         models.MarriageData
		wantErr      bool
	}{
		{
			marriageType: "unmarried",
			want:         models.MarriageData{IsMarried: "no", MarriageStatus: "unmarried", StatusAcceptance: "valid"},
		},
		{
			marriageType: "married",
			want:         models.MarriageData{IsMarried: "yes", MarriageStatus: "married", StatusAcceptance: "valid"},
		},
		{
			marriageType: "widowed",
			want:         models.MarriageData{IsMarried: "yes", MarriageStatus: "married", StatusAcceptance: "valid"},
		},
		{
			marriageType: "divorced",
			want:         models.MarriageData{IsMarried: "yes", MarriageStatus: "married", StatusAcceptance: "invalid"},
		},
		{
			marriageType: "remarried",
			want:         models.MarriageData{IsMarried: "yes", MarriageStatus: "married", StatusAcceptance: "invalid"},
		},
		{
			marriageType: "separated",
			wantErr:      true,
		},
		{
			marriageType: "",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.marriageType, func(t *testing.T) {
			got, err := CalculateMarriageData(tt.marriageType)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %+v", tt.marriageType, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateRole(t *testing.T) {
	tests := []struct {
		name        string
		gender      string
		isMarried   string
		hasChildren string
		want        string
	}{
		{"unmarried male", "male", "no", "no", "son"},
		{"unmarried female", "female", "no", "no", "daughter"},
		{"married male without children", "male", "yes", "no", "husband"},
		{"married female without children", "female", "yes", "no", "wife"},
		{"married male with children", "male", "yes", "yes", "father"},
		{"married female with children", "female", "yes", "yes", "mother"},
		{"others unmarried", "others", "no", "no", "member"},
		{"others married with children", "others", "yes", "yes", "member"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRole(tt.gender, tt.isMarried, tt.hasChildren)
			if got != tt.want {
				t.Errorf("CalculateRole(%s, %s, %s) = %s, want %s",
					tt.gender, tt.isMarried, tt.hasChildren, got, tt.want)
			}
		})
	}
}

func TestApplyIntroAnswersAdvancesFlow(t *testing.T) {
	user := &models.UserAccount{
		CreatedViaInvitation:  true,
		ProfileCompletionStep: models.StepMemberDetails,
	}
	if got := NextStep(user); got != FlowIntroRequired {
		t.Fatalf("precondition: NextStep = %s, want %s", got, FlowIntroRequired)
	}

	answers := &models.IntroAnswers{
		Gender:       models.GenderMale,
		MarriageType: models.MarriageMarried,
		HasChildren:  "no",
		IsMarried:    "yes",
		Role:         "husband",
	}
	applyIntroAnswers(user, answers)

	if !user.IntroCompleted || !user.QuestionsCompleted {
		t.Error("intro flags not set on the in-memory user")
	}
	if user.Gender != models.GenderMale || user.IsMarried != "yes" || user.Role != "husband" {
		t.Errorf("derived fields not mirrored: gender=%s isMarried=%s role=%s",
			user.Gender, user.IsMarried, user.Role)
	}
	// The response built right after a submit must not point back at the
	// questionnaire
	if got := NextStep(user); got != FlowProfileRequired {
		t.Errorf("NextStep after submit = %s, want %s", got, FlowProfileRequired)
	}
}
