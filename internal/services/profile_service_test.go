package services

import (
	"reflect"
	"testing"

	"community-backend/internal/models"
)

func TestVisibleSections(t *testing.T) {
	tests := []struct {
		name        string
		isMarried   string
		hasChildren string
		want        []string
	}{
		{
			name:        "unmarried without children",
			isMarried:   "no",
			hasChildren: "no",
			want:        []string{"member_details", "member_family_tree"},
		},
		{
			name:        "married without children",
			isMarried:   "yes",
			hasChildren: "no",
			want:        []string{"member_details", "spouse_details", "member_family_tree", "spouse_family_tree"},
		},
		{
			name:        "married with children",
			isMarried:   "yes",
			hasChildren: "yes",
			want:        []string{"member_details", "spouse_details", "children_details", "member_family_tree", "spouse_family_tree"},
		},
		{
			name:        "unmarried with children",
			isMarried:   "no",
			hasChildren: "yes",
			want:        []string{"member_details", "children_details", "member_family_tree"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleSections(tt.isMarried, tt.hasChildren)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("VisibleSections(%s, %s) = %v, want %v", tt.isMarried, tt.hasChildren, got, tt.want)
			}
		})
	}
}

func TestRequiredSections(t *testing.T) {
	// Family tree sections never gate submission
	got := RequiredSections("yes", "yes")
	want := []string{"member_details", "spouse_details", "children_details"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RequiredSections(yes, yes) = %v, want %v", got, want)
	}

	// Changing isMarried to no removes spouse details from the gate
	got = RequiredSections("no", "yes")
	want = []string{"member_details", "children_details"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RequiredSections(no, yes) = %v, want %v", got, want)
	}
}

func TestMissingSections(t *testing.T) {
	statuses := map[string]bool{
		"member_details": true,
		"spouse_details": false,
	}

	got := MissingSections("yes", "yes", statuses)
	want := []string{"spouse_details", "children_details"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MissingSections = %v, want %v", got, want)
	}

	// A completed spouse section is not missing even when no longer required
	all := map[string]bool{
		"member_details":   true,
		"children_details": true,
	}
	if got := MissingSections("no", "yes", all); got != nil {
		t.Errorf("nothing should be missing, got %v", got)
	}
}

func TestNextIncompleteStep(t *testing.T) {
	tests := []struct {
		name     string
		statuses map[string]bool
		want     string
	}{
		{
			name:     "nothing complete starts at member details",
			statuses: map[string]bool{},
			want:     models.StepMemberDetails,
		},
		{
			name:     "member done advances to spouse",
			statuses: map[string]bool{"member_details": true},
			want:     models.StepSpouseDetails,
		},
		{
			name: "required done advances to optional family tree",
			statuses: map[string]bool{
				"member_details":   true,
				"spouse_details":   true,
				"children_details": true,
			},
			want: models.StepMemberFamilyTree,
		},
		{
			name: "everything visible done",
			statuses: map[string]bool{
				"member_details":     true,
				"spouse_details":     true,
				"children_details":   true,
				"member_family_tree": true,
				"spouse_family_tree": true,
			},
			want: models.StepCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextIncompleteStep("yes", "yes", tt.statuses); got != tt.want {
				t.Errorf("NextIncompleteStep = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStepIndexMonotonic(t *testing.T) {
	// Index ordering backs the monotonic step advance: a later step must
	// always index higher than an earlier one
	steps := []string{
		models.StepMemberDetails,
		models.StepSpouseDetails,
		models.StepChildrenDetails,
		models.StepMemberFamilyTree,
		models.StepSpouseFamilyTree,
		models.StepCompleted,
	}

	for i := 1; i < len(steps); i++ {
		if stepIndex(steps[i]) <= stepIndex(steps[i-1]) {
			t.Errorf("stepIndex(%s) = %d not greater than stepIndex(%s) = %d",
				steps[i], stepIndex(steps[i]), steps[i-1], stepIndex(steps[i-1]))
		}
	}

	if stepIndex("bogus") != -1 {
		t.Errorf("unknown step index = %d, want -1", stepIndex("bogus"))
	}
}
