package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"community-backend/internal/models"
	"community-backend/internal/repositories"

	"github.com/google/uuid"
)

// Section pipeline order. profile_completion_step only ever moves forward
// through this list
var sectionOrder = []string{
	models.SectionMemberDetails,
	models.SectionSpouseDetails,
	models.SectionChildrenDetails,
	models.SectionMemberFamilyTree,
	models.SectionSpouseFamilyTree,
}

// Family-tree sub-steps persist relatives without completing a section
var familyTreeSubSteps = map[string]string{
	"save_member_parents":               "member",
	"save_member_paternal_grandparents": "member",
	"save_member_maternal_grandparents": "member",
	"save_spouse_parents":               "spouse",
	"save_spouse_paternal_grandparents": "spouse",
	"save_spouse_maternal_grandparents": "spouse",
}

// VisibleSections returns the sections shown to a user, a pure function of
// the intro answers
func VisibleSections(isMarried, hasChildren string) []string {
	sections := []string{models.SectionMemberDetails}
	if isMarried == "yes" {
		sections = append(sections, models.SectionSpouseDetails)
	}
	if hasChildren == "yes" {
		sections = append(sections, models.SectionChildrenDetails)
	}
	sections = append(sections, models.SectionMemberFamilyTree)
	if isMarried == "yes" {
		sections = append(sections, models.SectionSpouseFamilyTree)
	}
	return sections
}

// RequiredSections returns the sections that gate final submission. The
// family-tree sections are always optional
func RequiredSections(isMarried, hasChildren string) []string {
	sections := []string{models.SectionMemberDetails}
	if isMarried == "yes" {
		sections = append(sections, models.SectionSpouseDetails)
	}
	if hasChildren == "yes" {
		sections = append(sections, models.SectionChildrenDetails)
	}
	return sections
}

// MissingSections lists required sections not yet complete
func MissingSections(isMarried, hasChildren string, statuses map[string]bool) []string {
	var missing []string
	for _, section := range RequiredSections(isMarried, hasChildren) {
		if !statuses[section] {
			missing = append(missing, section)
		}
	}
	return missing
}

type ProfileService struct {
	UserRepo    *repositories.UserRepository
	ProfileRepo *repositories.ProfileRepository
	ChildRepo   *repositories.ChildRepository
	Kulam       *KulamService

	// now is swappable for date-validation tests
	now func() time.Time
}

func NewProfileService(userRepo *repositories.UserRepository, profileRepo *repositories.ProfileRepository, childRepo *repositories.ChildRepository, kulam *KulamService) *ProfileService {
	return &ProfileService{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		ChildRepo:   childRepo,
		Kulam:       kulam,
		now:         time.Now,
	}
}

// HandleStep dispatches one profile-completion operation. Save steps return
// the refreshed section status; get steps return the stored payload
func (s *ProfileService) HandleStep(ctx context.Context, user *models.UserAccount, req *models.ProfileCompletionRequest) (any, error) {
	switch req.Step {
	case models.SectionMemberDetails:
		return s.saveMemberDetails(ctx, user, req.Member)
	case models.SectionSpouseDetails:
		return s.saveSpouseDetails(ctx, user, req.Spouse)
	case models.SectionChildrenDetails:
		return s.saveChildrenDetails(ctx, user, req.Children)
	case models.SectionMemberFamilyTree:
		return s.saveFamilyTree(ctx, user, models.SectionMemberFamilyTree, "member", req.FamilyTree)
	case models.SectionSpouseFamilyTree:
		return s.saveFamilyTree(ctx, user, models.SectionSpouseFamilyTree, "spouse", req.FamilyTree)
	case "get_member_details":
		return s.ProfileRepo.GetMemberDetails(ctx, user.ID)
	case "get_spouse_details":
		return s.ProfileRepo.GetSpouseDetails(ctx, user.ID)
	case "get_children_details":
		return s.ChildRepo.ListByUser(ctx, user.ID)
	case "get_member_family_tree":
		return s.ProfileRepo.ListFamilyTreePersons(ctx, user.ID, "member")
	case "get_spouse_family_tree":
		return s.ProfileRepo.ListFamilyTreePersons(ctx, user.ID, "spouse")
	case "complete_profile":
		return s.CompleteProfile(ctx, user)
	}

	if side, ok := familyTreeSubSteps[req.Step]; ok {
		return s.saveFamilyTreeSubStep(ctx, user, side, req.FamilyTree)
	}

	return nil, errors.New("unknown profile completion step: " + req.Step)
}

func (s *ProfileService) saveMemberDetails(ctx context.Context, user *models.UserAccount, d *models.MemberDetails) (*models.SectionStatusResponse, error) {
	if d == nil {
		return nil, errors.New("member payload is required")
	}
	if err := validateMemberDetails(d, s.now()); err != nil {
		return nil, err
	}

	var err error
	if d.Education, err = CollectEducation(d.Education, s.now()); err != nil {
		return nil, err
	}
	if d.Professions, err = CollectProfessions(d.Professions); err != nil {
		return nil, err
	}

	if err := s.ProfileRepo.SaveMemberDetails(ctx, user.ID, d); err != nil {
		return nil, fmt.Errorf("failed to save member details: %w", err)
	}

	// The member is a kulam collection source; push the value down the map
	if err := s.Kulam.Propagate(ctx, user.ID, user.Gender, models.RoleMember, d.KulamFields); err != nil {
		return nil, err
	}

	return s.completeSection(ctx, user, models.SectionMemberDetails)
}

func (s *ProfileService) saveSpouseDetails(ctx context.Context, user *models.UserAccount, d *models.SpouseDetails) (*models.SectionStatusResponse, error) {
	if user.IsMarried != "yes" {
		return nil, errors.New("spouse details are not applicable for this profile")
	}
	if d == nil {
		return nil, errors.New("spouse payload is required")
	}
	if err := validateSpouseDetails(d, s.now()); err != nil {
		return nil, err
	}

	var err error
	if d.Education, err = CollectEducation(d.Education, s.now()); err != nil {
		return nil, err
	}
	if d.Professions, err = CollectProfessions(d.Professions); err != nil {
		return nil, err
	}

	if err := s.ProfileRepo.SaveSpouseDetails(ctx, user.ID, d); err != nil {
		return nil, fmt.Errorf("failed to save spouse details: %w", err)
	}

	if err := s.Kulam.Propagate(ctx, user.ID, user.Gender, models.RoleSpouse, d.KulamFields); err != nil {
		return nil, err
	}

	return s.completeSection(ctx, user, models.SectionSpouseDetails)
}

func (s *ProfileService) saveChildrenDetails(ctx context.Context, user *models.UserAccount, children []models.Child) (*models.SectionStatusResponse, error) {
	if user.HasChildren != "yes" {
		return nil, errors.New("children details are not applicable for this profile")
	}
	if len(children) == 0 {
		return nil, errors.New("at least one child is required")
	}

	now := s.now()
	for i := range children {
		c := &children[i]
		if strings.TrimSpace(c.FirstName) == "" {
			return nil, fmt.Errorf("child %d: first name is required", i+1)
		}
		if c.Gender == "" {
			return nil, fmt.Errorf("child %d: gender is required", i+1)
		}
		if err := ValidateChildDateOfBirth(c.DateOfBirth, now); err != nil {
			return nil, fmt.Errorf("child %d: %s", i+1, err.Error())
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		c.Position = i
		var err error
		if c.Education, err = CollectEducation(c.Education, now); err != nil {
			return nil, fmt.Errorf("child %d: %s", i+1, err.Error())
		}
		if c.Professions, err = CollectProfessions(c.Professions); err != nil {
			return nil, fmt.Errorf("child %d: %s", i+1, err.Error())
		}
	}

	if err := s.ChildRepo.ReplaceForUser(ctx, user.ID, children); err != nil {
		return nil, fmt.Errorf("failed to save children: %w", err)
	}

	// Newly written child rows must pick up the inherited kulam again
	if err := s.reapplyParentKulam(ctx, user); err != nil {
		return nil, err
	}

	return s.completeSection(ctx, user, models.SectionChildrenDetails)
}

// reapplyParentKulam re-runs the member and spouse copy-map sources so a
// freshly replaced child list carries the inherited clan triple
func (s *ProfileService) reapplyParentKulam(ctx context.Context, user *models.UserAccount) error {
	if member, err := s.ProfileRepo.GetMemberDetails(ctx, user.ID); err == nil && member != nil {
		if err := s.Kulam.Propagate(ctx, user.ID, user.Gender, models.RoleMember, member.KulamFields); err != nil {
			return err
		}
	}
	if spouse, err := s.ProfileRepo.GetSpouseDetails(ctx, user.ID); err == nil && spouse != nil {
		if err := s.Kulam.Propagate(ctx, user.ID, user.Gender, models.RoleSpouse, spouse.KulamFields); err != nil {
			return err
		}
	}
	return nil
}

func (s *ProfileService) saveFamilyTree(ctx context.Context, user *models.UserAccount, section, side string, req *models.FamilyTreeRequest) (*models.SectionStatusResponse, error) {
	if section == models.SectionSpouseFamilyTree && user.IsMarried != "yes" {
		return nil, errors.New("spouse family tree is not applicable for this profile")
	}
	if req == nil || len(req.Persons) == 0 {
		return nil, errors.New("at least one family member is required")
	}

	if err := s.savePersons(ctx, user, side, req.Persons); err != nil {
		return nil, err
	}

	return s.completeSection(ctx, user, section)
}

func (s *ProfileService) saveFamilyTreeSubStep(ctx context.Context, user *models.UserAccount, side string, req *models.FamilyTreeRequest) (*models.SectionStatusResponse, error) {
	if side == "spouse" && user.IsMarried != "yes" {
		return nil, errors.New("spouse family tree is not applicable for this profile")
	}
	if req == nil || len(req.Persons) == 0 {
		return nil, errors.New("at least one family member is required")
	}

	if err := s.savePersons(ctx, user, side, req.Persons); err != nil {
		return nil, err
	}

	// Sub-steps save progress without completing the section
	return s.sectionStatus(ctx, user)
}

func (s *ProfileService) savePersons(ctx context.Context, user *models.UserAccount, side string, persons []models.FamilyTreePerson) error {
	for i := range persons {
		p := &persons[i]
		if !strings.HasPrefix(p.Role, side+"_") {
			return fmt.Errorf("role %s does not belong to the %s family tree", p.Role, side)
		}
		if err := s.ProfileRepo.UpsertFamilyTreePerson(ctx, user.ID, p); err != nil {
			return fmt.Errorf("failed to save %s: %w", p.Role, err)
		}
		// Collected roles (mothers, grandmothers) feed the copy map
		if err := s.Kulam.Propagate(ctx, user.ID, user.Gender, p.Role, p.KulamFields); err != nil {
			return err
		}
	}
	return nil
}

// completeSection marks the section done and advances the pipeline step
func (s *ProfileService) completeSection(ctx context.Context, user *models.UserAccount, section string) (*models.SectionStatusResponse, error) {
	if err := s.ProfileRepo.MarkSectionComplete(ctx, user.ID, section); err != nil {
		return nil, fmt.Errorf("failed to record section completion: %w", err)
	}

	statuses, err := s.ProfileRepo.GetSectionStatuses(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	next := NextIncompleteStep(user.IsMarried, user.HasChildren, statuses)
	if stepIndex(next) > stepIndex(user.ProfileCompletionStep) && user.ProfileCompletionStep != models.StepCompleted {
		if err := s.UserRepo.UpdateProfileStep(ctx, user.ID, next); err != nil {
			return nil, err
		}
		user.ProfileCompletionStep = next
	}

	return &models.SectionStatusResponse{
		Sections: statuses,
		Required: RequiredSections(user.IsMarried, user.HasChildren),
		Step:     user.ProfileCompletionStep,
	}, nil
}

func (s *ProfileService) sectionStatus(ctx context.Context, user *models.UserAccount) (*models.SectionStatusResponse, error) {
	statuses, err := s.ProfileRepo.GetSectionStatuses(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &models.SectionStatusResponse{
		Sections: statuses,
		Required: RequiredSections(user.IsMarried, user.HasChildren),
		Step:     user.ProfileCompletionStep,
	}, nil
}

// SectionStatus exposes the completion map for GET /api/profile
func (s *ProfileService) SectionStatus(ctx context.Context, user *models.UserAccount) (*models.SectionStatusResponse, error) {
	return s.sectionStatus(ctx, user)
}

// NextIncompleteStep returns the first visible section not yet complete,
// or completed when every visible section is done
func NextIncompleteStep(isMarried, hasChildren string, statuses map[string]bool) string {
	for _, section := range VisibleSections(isMarried, hasChildren) {
		if !statuses[section] {
			return section
		}
	}
	return models.StepCompleted
}

func stepIndex(step string) int {
	if step == models.StepCompleted {
		return len(sectionOrder)
	}
	for i, s := range sectionOrder {
		if s == step {
			return i
		}
	}
	return -1
}

// CompleteProfile finalizes submission. Every currently-required section
// must be complete; otherwise the missing list is returned as an error and
// nothing is written
func (s *ProfileService) CompleteProfile(ctx context.Context, user *models.UserAccount) (*models.SectionStatusResponse, error) {
	statuses, err := s.ProfileRepo.GetSectionStatuses(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	missing := MissingSections(user.IsMarried, user.HasChildren, statuses)
	if len(missing) > 0 {
		return nil, errors.New("cannot submit profile, incomplete sections: " + strings.Join(missing, ", "))
	}

	if err := s.UserRepo.MarkProfileCompleted(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to complete profile: %w", err)
	}

	user.ProfileCompleted = true
	user.ProfileCompletionStep = models.StepCompleted

	return &models.SectionStatusResponse{
		Sections: statuses,
		Required: RequiredSections(user.IsMarried, user.HasChildren),
		Step:     models.StepCompleted,
	}, nil
}

func validateMemberDetails(d *models.MemberDetails, now time.Time) error {
	if strings.TrimSpace(d.FirstName) == "" {
		return errors.New("first name is required")
	}
	if d.Gender == "" {
		return errors.New("gender is required")
	}
	if err := ValidateDateOfBirth(d.DateOfBirth, now); err != nil {
		return err
	}
	if err := ValidateEmail(d.Email); err != nil {
		return err
	}
	if err := ValidatePhone(d.Phone, d.CountryCode); err != nil {
		return err
	}
	if d.PinCode != "" {
		if err := ValidatePinCode(d.PinCode); err != nil {
			return err
		}
	}
	return nil
}

func validateSpouseDetails(d *models.SpouseDetails, now time.Time) error {
	if strings.TrimSpace(d.FirstName) == "" {
		return errors.New("spouse first name is required")
	}
	if d.Gender == "" {
		return errors.New("spouse gender is required")
	}
	return ValidateDateOfBirth(d.DateOfBirth, now)
}
