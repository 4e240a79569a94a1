package services

import (
	"context"
	"errors"

	"community-backend/internal/models"
	"community-backend/internal/repositories"
)

type IntroService struct {
	UserRepo *repositories.UserRepository
}

func NewIntroService(userRepo *repositories.UserRepository) *IntroService {
	return &IntroService{UserRepo: userRepo}
}

// ErrIntroAlreadySubmitted signals a resubmit of the write-once questionnaire
var ErrIntroAlreadySubmitted = errors.New("intro questions have already been submitted")

// marriageTable is the fixed lookup from marriage type to derived fields.
// Divorced and remarried members keep isMarried=yes (spouse sections stay
// required) but carry statusAcceptance=invalid for committee review
var marriageTable = map[string]models.MarriageData{
	models.MarriageUnmarried: {IsMarried: "no", MarriageStatus: "unmarried", StatusAcceptance: "valid"},
	models.MarriageMarried:   {IsMarried: "yes", MarriageStatus: "married", StatusAcceptance: "valid"},
	models.MarriageWidowed:   {IsMarried: "yes", MarriageStatus: "married", StatusAcceptance: "valid"},
	models.MarriageDivorced:  {IsMarried: "yes", MarriageStatus: "married", StatusAcceptance: "invalid"},
	models.MarriageRemarried: {IsMarried: "yes", MarriageStatus: "married", StatusAcceptance: "invalid"},
}

// CalculateMarriageData derives the marriage triple from the marriage type
func CalculateMarriageData(marriageType string) (models.MarriageData, error) {
	data, ok := marriageTable[marriageType]
	if !ok {
		return models.MarriageData{}, errors.New("unknown marriage type: " + marriageType)
	}
	return data, nil
}

// CalculateRole derives the household role from gender and marital state.
// Gender "others" always yields the generic member role
func CalculateRole(gender, isMarried, hasChildren string) string {
	if gender == models.GenderOthers {
		return "member"
	}

	male := gender == models.GenderMale

	switch {
	case isMarried != "yes":
		if male {
			return "son"
		}
		return "daughter"
	case hasChildren == "yes":
		if male {
			return "father"
		}
		return "mother"
	default:
		if male {
			return "husband"
		}
		return "wife"
	}
}

// Submit validates and persists the questionnaire. Write-once per user
func (s *IntroService) Submit(ctx context.Context, user *models.UserAccount, req *models.IntroRequest) (*models.IntroAnswers, error) {
	if user.IntroCompleted {
		return nil, ErrIntroAlreadySubmitted
	}

	if req.Gender != models.GenderMale && req.Gender != models.GenderFemale && req.Gender != models.GenderOthers {
		return nil, errors.New("gender must be male, female, or others")
	}
	if req.HasChildren != "yes" && req.HasChildren != "no" {
		return nil, errors.New("hasChildren must be yes or no")
	}

	marriage, err := CalculateMarriageData(req.MarriageType)
	if err != nil {
		return nil, err
	}

	answers := &models.IntroAnswers{
		Gender:           req.Gender,
		MarriageType:     req.MarriageType,
		HasChildren:      req.HasChildren,
		IsMarried:        marriage.IsMarried,
		MarriageStatus:   marriage.MarriageStatus,
		StatusAcceptance: marriage.StatusAcceptance,
		Role:             CalculateRole(req.Gender, marriage.IsMarried, req.HasChildren),
	}

	if err := s.UserRepo.SetIntroAnswers(ctx, user.ID, answers); err != nil {
		return nil, errors.New("failed to save intro answers: " + err.Error())
	}

	applyIntroAnswers(user, answers)

	return answers, nil
}

// applyIntroAnswers mirrors a persisted questionnaire onto the in-memory
// user so the flow destination computed for the same request already
// reflects the completed intro
func applyIntroAnswers(user *models.UserAccount, answers *models.IntroAnswers) {
	user.Gender = answers.Gender
	user.MarriageType = answers.MarriageType
	user.IsMarried = answers.IsMarried
	user.HasChildren = answers.HasChildren
	user.Role = answers.Role
	user.IntroCompleted = true
	user.QuestionsCompleted = true
}
