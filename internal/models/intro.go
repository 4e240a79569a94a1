package models

// Gender values accepted by the intro questionnaire
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOthers = "others"
)

// Marriage type values
const (
	MarriageUnmarried = "unmarried"
	MarriageMarried   = "married"
	MarriageWidowed   = "widowed"
	MarriageDivorced  = "divorced"
	MarriageRemarried = "remarried"
)

// IntroAnswers captures the onboarding questionnaire plus derived fields
// Derived fields are computed server-side, never trusted from the client
type IntroAnswers struct {
	Gender           string `json:"gender"`
	MarriageType     string `json:"marriageType"`
	HasChildren      string `json:"hasChildren"`
	IsMarried        string `json:"isMarried"`
	MarriageStatus   string `json:"marriageStatus"`
	StatusAcceptance string `json:"statusAcceptance"`
	Role             string `json:"role"`
}

// IntroRequest is the payload for POST /api/intro-questions
type IntroRequest struct {
	Gender       string `json:"gender"`
	MarriageType string `json:"marriageType"`
	HasChildren  string `json:"hasChildren"`
}

// MarriageData is the derived triple from the marriage type lookup
type MarriageData struct {
	IsMarried        string `json:"isMarried"`
	MarriageStatus   string `json:"marriageStatus"`
	StatusAcceptance string `json:"statusAcceptance"`
}
