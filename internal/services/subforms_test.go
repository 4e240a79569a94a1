package services

import (
	"testing"

	"community-backend/internal/models"
)

func TestCollectEducation(t *testing.T) {
	entries := []models.EducationEntry{
		{Degree: "B.E.", YearOfCompletion: 2010},
		{Degree: "", YearOfCompletion: 2020},
		{Degree: "M.E.", YearOfCompletion: 2014, ID: "existing-id"},
		{Degree: "   ", YearOfCompletion: 2021},
	}

	got, err := CollectEducation(entries, testNow)
	if err != nil {
		t.Fatalf("CollectEducation: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("collected %d entries, want 2 (blank degrees dropped)", len(got))
	}
	// Most recent completion year first
	if got[0].Degree != "M.E." || got[1].Degree != "B.E." {
		t.Errorf("order = [%s, %s], want [M.E., B.E.]", got[0].Degree, got[1].Degree)
	}
	if got[0].ID != "existing-id" {
		t.Errorf("existing ID overwritten: %s", got[0].ID)
	}
	if got[1].ID == "" {
		t.Error("new entry not assigned an ID")
	}
}

func TestCollectEducationYearBounds(t *testing.T) {
	cases := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{"future year", 3000, true},
		{"before 1950", 1800, true},
		{"lower bound", 1950, false},
		{"current year", testNow.Year(), false},
		{"next year", testNow.Year() + 1, true},
		{"unset year", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CollectEducation([]models.EducationEntry{{Degree: "B.Sc.", YearOfCompletion: tc.year}}, testNow)
			if tc.wantErr && err == nil {
				t.Errorf("year %d accepted, want error", tc.year)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("year %d rejected: %v", tc.year, err)
			}
		})
	}
}

func TestCollectProfessions(t *testing.T) {
	entries := []models.ProfessionEntry{
		{JobType: "private", ExperienceYears: 2, ExperienceMonths: 6},
		{JobType: ""},
		{JobType: "business", ExperienceYears: 10},
		{JobType: "government", ExperienceYears: 2, ExperienceMonths: 7},
	}

	got, err := CollectProfessions(entries)
	if err != nil {
		t.Fatalf("CollectProfessions: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("collected %d entries, want 3", len(got))
	}
	// Total experience months descending: 120, 31, 30
	wantOrder := []string{"business", "government", "private"}
	for i, jobType := range wantOrder {
		if got[i].JobType != jobType {
			t.Errorf("position %d = %s, want %s", i, got[i].JobType, jobType)
		}
	}
	for _, e := range got {
		if e.ID == "" {
			t.Errorf("entry %s missing assigned ID", e.JobType)
		}
	}
}

func TestCollectProfessionsUnknownJobType(t *testing.T) {
	_, err := CollectProfessions([]models.ProfessionEntry{{JobType: "astronaut"}})
	if err == nil {
		t.Fatal("unknown job type accepted, want error")
	}

	for _, jobType := range models.JobTypes {
		if _, err := CollectProfessions([]models.ProfessionEntry{{JobType: jobType}}); err != nil {
			t.Errorf("known job type %s rejected: %v", jobType, err)
		}
	}
}

func TestCollectEducationEmpty(t *testing.T) {
	if got, err := CollectEducation(nil, testNow); err != nil || len(got) != 0 {
		t.Errorf("nil input should collect to empty, got %d entries, err %v", len(got), err)
	}
	if got, err := CollectProfessions([]models.ProfessionEntry{{JobType: " "}}); err != nil || len(got) != 0 {
		t.Errorf("all-blank input should collect to empty, got %d entries, err %v", len(got), err)
	}
}
