package services

import (
	"testing"

	"community-backend/internal/models"
)

func TestValidateKulamRules(t *testing.T) {
	if err := ValidateKulamRules(); err != nil {
		t.Fatalf("shipped rule table must validate: %v", err)
	}
}

func TestRulesForGender(t *testing.T) {
	if _, ok := RulesForGender(models.GenderMale); !ok {
		t.Error("male rules missing")
	}
	if _, ok := RulesForGender(models.GenderFemale); !ok {
		t.Error("female rules missing")
	}
	if _, ok := RulesForGender(models.GenderOthers); ok {
		t.Error("gender others must be exempt from kulam rules")
	}
}

func TestKulamCopyTargets(t *testing.T) {
	tests := []struct {
		name    string
		gender  string
		source  string
		targets []string
	}{
		{
			name:    "male member kulam reaches children and paternal line",
			gender:  models.GenderMale,
			source:  models.RoleMember,
			targets: []string{"children", models.RoleMemberFather, models.RoleMemberPaternalGrandfather},
		},
		{
			name:    "member mother kulam reaches only maternal grandfather",
			gender:  models.GenderMale,
			source:  models.RoleMemberMother,
			targets: []string{models.RoleMemberMaternalGrandfather},
		},
		{
			name:    "female member kulam does not reach children",
			gender:  models.GenderFemale,
			source:  models.RoleMember,
			targets: []string{models.RoleMemberFather, models.RoleMemberPaternalGrandfather},
		},
		{
			name:    "female spouse kulam reaches children",
			gender:  models.GenderFemale,
			source:  models.RoleSpouse,
			targets: []string{"children", models.RoleSpouseFather, models.RoleSpousePaternalGrandfather},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, ok := RulesForGender(tt.gender)
			if !ok {
				t.Fatalf("no rules for gender %s", tt.gender)
			}

			got := rules.CopyMap[tt.source]
			if len(got) != len(tt.targets) {
				t.Fatalf("targets for %s = %v, want %v", tt.source, got, tt.targets)
			}
			for i, target := range tt.targets {
				if got[i] != target {
					t.Errorf("target[%d] = %s, want %s", i, got[i], target)
				}
			}
		})
	}
}

func TestKulamMotherDoesNotAffectFatherSide(t *testing.T) {
	for _, gender := range []string{models.GenderMale, models.GenderFemale} {
		rules, _ := RulesForGender(gender)
		for _, target := range rules.CopyMap[models.RoleMemberMother] {
			switch target {
			case models.RoleMemberFather, models.RoleMemberPaternalGrandfather, models.RoleMemberPaternalGrandmother:
				t.Errorf("gender %s: mother's kulam must not copy to %s", gender, target)
			}
		}
	}
}

func TestCollectedRoles(t *testing.T) {
	collected := CollectedRoles(models.GenderMale)

	want := map[string]bool{
		models.RoleMember:                    true,
		models.RoleMemberMother:              true,
		models.RoleMemberPaternalGrandmother: true,
		models.RoleMemberMaternalGrandmother: true,
		models.RoleSpouse:                    true,
		models.RoleSpouseMother:              true,
		models.RoleSpousePaternalGrandmother: true,
		models.RoleSpouseMaternalGrandmother: true,
	}

	if len(collected) != len(want) {
		t.Fatalf("collected %d roles, want %d", len(collected), len(want))
	}
	for _, role := range collected {
		if !want[role] {
			t.Errorf("unexpected collected role %s", role)
		}
	}
}
