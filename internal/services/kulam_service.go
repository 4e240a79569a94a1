package services

import (
	"context"
	"fmt"

	"community-backend/internal/models"
	"community-backend/internal/repositories"
)

// KulamRules defines, for one member gender, which family roles have their
// clan triple entered directly (Collect) and which derived roles receive a
// verbatim copy of a collected value (CopyMap). Copies are one-directional:
// editing a target never propagates back. The map is acyclic by
// construction — targets are never sources — and Validate enforces that
type KulamRules struct {
	Collect []string
	CopyMap map[string][]string
}

// copyToChildren is a pseudo-target: the copy lands on every child record
const copyToChildren = "children"

// Patrilineal inheritance. A person carries their father's kulam, so each
// male line is derived from the nearest collected female-line entry point:
// the member's own kulam covers father and paternal grandfather, the
// mother's covers the maternal grandfather, and grandmothers stand alone.
// Children take the father's kulam: the member's for a male member, the
// spouse's for a female member
var kulamRulesByGender = map[string]KulamRules{
	models.GenderMale: {
		Collect: []string{
			models.RoleMember,
			models.RoleMemberMother,
			models.RoleMemberPaternalGrandmother,
			models.RoleMemberMaternalGrandmother,
			models.RoleSpouse,
			models.RoleSpouseMother,
			models.RoleSpousePaternalGrandmother,
			models.RoleSpouseMaternalGrandmother,
		},
		CopyMap: map[string][]string{
			models.RoleMember:       {copyToChildren, models.RoleMemberFather, models.RoleMemberPaternalGrandfather},
			models.RoleMemberMother: {models.RoleMemberMaternalGrandfather},
			models.RoleSpouse:       {models.RoleSpouseFather, models.RoleSpousePaternalGrandfather},
			models.RoleSpouseMother: {models.RoleSpouseMaternalGrandfather},
		},
	},
	models.GenderFemale: {
		Collect: []string{
			models.RoleMember,
			models.RoleMemberMother,
			models.RoleMemberPaternalGrandmother,
			models.RoleMemberMaternalGrandmother,
			models.RoleSpouse,
			models.RoleSpouseMother,
			models.RoleSpousePaternalGrandmother,
			models.RoleSpouseMaternalGrandmother,
		},
		CopyMap: map[string][]string{
			models.RoleMember:       {models.RoleMemberFather, models.RoleMemberPaternalGrandfather},
			models.RoleMemberMother: {models.RoleMemberMaternalGrandfather},
			models.RoleSpouse:       {copyToChildren, models.RoleSpouseFather, models.RoleSpousePaternalGrandfather},
			models.RoleSpouseMother: {models.RoleSpouseMaternalGrandfather},
		},
	},
}

// RulesForGender returns the rule set for a gender. Gender "others" is
// exempt from family-tree kulam collection: ok=false, defaults apply
func RulesForGender(gender string) (KulamRules, bool) {
	rules, ok := kulamRulesByGender[gender]
	return rules, ok
}

// ValidateKulamRules checks every rule set is a DAG with collected roles as
// the only sources. Called once at startup; a broken table is a programming
// error worth failing fast on
func ValidateKulamRules() error {
	for gender, rules := range kulamRulesByGender {
		collected := make(map[string]bool, len(rules.Collect))
		for _, role := range rules.Collect {
			collected[role] = true
		}

		for source, targets := range rules.CopyMap {
			if !collected[source] {
				return fmt.Errorf("kulam rules (%s): copy source %s is not a collected role", gender, source)
			}
			for _, target := range targets {
				if target == copyToChildren {
					continue
				}
				if collected[target] {
					return fmt.Errorf("kulam rules (%s): copy target %s is also a collected role", gender, target)
				}
				if _, isSource := rules.CopyMap[target]; isSource {
					return fmt.Errorf("kulam rules (%s): copy target %s is also a copy source", gender, target)
				}
			}
		}
	}
	return nil
}

// KulamService applies the copy map against stored family records
type KulamService struct {
	ProfileRepo *repositories.ProfileRepository
	ChildRepo   *repositories.ChildRepository
}

func NewKulamService(profileRepo *repositories.ProfileRepository, childRepo *repositories.ChildRepository) *KulamService {
	return &KulamService{ProfileRepo: profileRepo, ChildRepo: childRepo}
}

// Propagate copies a collected role's clan triple to all of its derived
// targets for the given user. No-op for exempt genders or non-source roles
func (s *KulamService) Propagate(ctx context.Context, userID int, gender, sourceRole string, value models.KulamFields) error {
	rules, ok := RulesForGender(gender)
	if !ok {
		return nil
	}

	targets, ok := rules.CopyMap[sourceRole]
	if !ok {
		return nil
	}

	for _, target := range targets {
		if target == copyToChildren {
			if err := s.ChildRepo.UpdateKulamFields(ctx, userID, value); err != nil {
				return fmt.Errorf("failed to copy kulam to children: %w", err)
			}
			continue
		}
		if err := s.ProfileRepo.UpdateKulamFields(ctx, userID, target, value); err != nil {
			return fmt.Errorf("failed to copy kulam to %s: %w", target, err)
		}
	}

	return nil
}

// CollectedRoles returns the roles whose kulam must be entered directly
// for the gender, or nil when the gender is exempt
func CollectedRoles(gender string) []string {
	rules, ok := RulesForGender(gender)
	if !ok {
		return nil
	}
	return rules.Collect
}
