package models

import "time"

// Profile section identifiers (also the step discriminator values)
const (
	SectionMemberDetails    = "member_details"
	SectionSpouseDetails    = "spouse_details"
	SectionChildrenDetails  = "children_details"
	SectionMemberFamilyTree = "member_family_tree"
	SectionSpouseFamilyTree = "spouse_family_tree"
)

// KulamFields is the clan triple attached to a person record
type KulamFields struct {
	Kulam      string `json:"kulam"`
	KulaDeivam string `json:"kula_deivam"`
	Kaani      string `json:"kaani"`
}

// MemberDetails is the member_details section payload
type MemberDetails struct {
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CountryCode string `json:"country_code"`
	AddressLine string `json:"address_line"`
	District    string `json:"district"`
	PinCode     string `json:"pin_code"`
	PostOffice  string `json:"post_office"`
	KulamFields
	Education   []EducationEntry  `json:"education"`
	Professions []ProfessionEntry `json:"professions"`
}

// SpouseDetails is the spouse_details section payload
type SpouseDetails struct {
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	KulamFields
	Education   []EducationEntry  `json:"education"`
	Professions []ProfessionEntry `json:"professions"`
}

// FamilyTreePerson is one relative in a family-tree section
// Role is one of the FamilyRole* constants
type FamilyTreePerson struct {
	Role        string `json:"role"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	NativePlace string `json:"native_place"`
	KulamFields
}

// Family tree roles. The member/spouse roles anchor the Kulam copy map
const (
	RoleMember                    = "member"
	RoleSpouse                    = "spouse"
	RoleChild                     = "child"
	RoleMemberFather              = "member_father"
	RoleMemberMother              = "member_mother"
	RoleMemberPaternalGrandfather = "member_paternal_grandfather"
	RoleMemberPaternalGrandmother = "member_paternal_grandmother"
	RoleMemberMaternalGrandfather = "member_maternal_grandfather"
	RoleMemberMaternalGrandmother = "member_maternal_grandmother"
	RoleSpouseFather              = "spouse_father"
	RoleSpouseMother              = "spouse_mother"
	RoleSpousePaternalGrandfather = "spouse_paternal_grandfather"
	RoleSpousePaternalGrandmother = "spouse_paternal_grandmother"
	RoleSpouseMaternalGrandfather = "spouse_maternal_grandfather"
	RoleSpouseMaternalGrandmother = "spouse_maternal_grandmother"
)

// FamilyTreeRequest carries one or more relatives for a tree sub-step
type FamilyTreeRequest struct {
	Persons []FamilyTreePerson `json:"persons"`
}

// SectionStatus tracks server-side completion of one profile section
type SectionStatus struct {
	UserID      int        `json:"user_id"`
	Section     string     `json:"section"`
	Complete    bool       `json:"complete"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ProfileCompletionRequest is the envelope for POST /api/profile-completion
// Exactly one of the payload fields is consulted, selected by Step
type ProfileCompletionRequest struct {
	Step       string             `json:"step"`
	Member     *MemberDetails     `json:"member,omitempty"`
	Spouse     *SpouseDetails     `json:"spouse,omitempty"`
	Children   []Child            `json:"children,omitempty"`
	FamilyTree *FamilyTreeRequest `json:"family_tree,omitempty"`
}

// SectionStatusResponse reports aggregate completion to the client
type SectionStatusResponse struct {
	Sections map[string]bool `json:"sections"`
	Required []string        `json:"required"`
	Step     string          `json:"profile_completion_step"`
}
