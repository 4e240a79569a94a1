package models

// Child is one child record. IDs are server-assigned UUIDs so that
// removal and re-addition never collide (the old client used DOM index
// counters and leaked gaps)
type Child struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	SecondName  string `json:"second_name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"date_of_birth"`
	Position    int    `json:"position"`
	KulamFields
	Education   []EducationEntry  `json:"education"`
	Professions []ProfessionEntry `json:"professions"`
}

// EducationEntry is one repeatable education sub-record
type EducationEntry struct {
	ID               string `json:"id"`
	Degree           string `json:"degree"`
	Department       string `json:"department"`
	YearOfCompletion int    `json:"year_of_completion"`
	Institution      string `json:"institution"`
}

// ProfessionEntry is one repeatable profession sub-record
type ProfessionEntry struct {
	ID               string `json:"id"`
	JobType          string `json:"job_type"`
	JobTypeOther     string `json:"job_type_other,omitempty"`
	Company          string `json:"company"`
	Position         string `json:"position"`
	ExperienceYears  int    `json:"experience_years"`
	ExperienceMonths int    `json:"experience_months"`
}

// Job type options; "other" unlocks the free-text field
var JobTypes = []string{
	"business",
	"private",
	"government",
	"self_employed",
	"homemaker",
	"student",
	"retired",
	"other",
}
