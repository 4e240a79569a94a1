package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"community-backend/internal/middleware"
	"community-backend/internal/models"
	"community-backend/internal/services"
)

func TestIntroSubmitResubmitIsConflict(t *testing.T) {
	h := NewIntroHandler(services.NewIntroService(nil))

	user := &models.UserAccount{
		ID:             7,
		UserType:       models.UserTypeMember,
		IntroCompleted: true,
	}

	body := strings.NewReader(`{"gender":"male","marriageType":"married","hasChildren":"no"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/intro-questions", body)
	req = req.WithContext(middleware.ContextWithUser(req.Context(), user))

	rr := httptest.NewRecorder()
	h.Submit(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("resubmit status = %d, want %d", rr.Code, http.StatusConflict)
	}
}
