package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"community-backend/internal/middleware"
	"community-backend/internal/models"
	"community-backend/internal/services"
)

type IntroHandler struct {
	IntroService *services.IntroService
}

func NewIntroHandler(introService *services.IntroService) *IntroHandler {
	return &IntroHandler{IntroService: introService}
}

// Submit records the intro questionnaire and returns the derived answers
// plus the user's next flow destination
func (h *IntroHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.IntroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	answers, err := h.IntroService.Submit(r.Context(), user, &req)
	if errors.Is(err, services.ErrIntroAlreadySubmitted) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"answers":    answers,
		"flow_state": services.NextStep(user),
	})
}

// Get returns the stored questionnaire answers
func (h *IntroHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if !user.QuestionsCompleted {
		http.Error(w, "Intro questionnaire not completed", http.StatusNotFound)
		return
	}

	answers := models.IntroAnswers{
		Gender:       user.Gender,
		MarriageType: user.MarriageType,
		HasChildren:  user.HasChildren,
		IsMarried:    user.IsMarried,
		Role:         user.Role,
	}
	if data, err := services.CalculateMarriageData(user.MarriageType); err == nil {
		answers.MarriageStatus = data.MarriageStatus
		answers.StatusAcceptance = data.StatusAcceptance
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(answers)
}
