package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"community-backend/internal/handlers"
	"community-backend/internal/middleware"
)

func testRouter() *mux.Router {
	return NewRouter(
		&handlers.AuthHandler{},
		&handlers.AccountHandler{},
		&handlers.IntroHandler{},
		&handlers.ProfileCompletionHandler{},
		&handlers.InvitationHandler{},
		&handlers.HelpPostHandler{},
		&handlers.ReferenceHandler{},
		&handlers.LocationHandler{},
		&handlers.FeatureSwitchHandler{},
		&handlers.AdminHandler{},
		&handlers.MonitoringHandler{},
		&handlers.WSHandler{},
		&middleware.AuthMiddleware{},
		&middleware.MaintenanceMiddleware{},
	)
}

func TestRouterRoutes(t *testing.T) {
	r := testRouter()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/register"},
		{http.MethodPost, "/api/login"},
		{http.MethodGet, "/api/invitations/validate"},
		{http.MethodGet, "/api/feature-switches"},
		{http.MethodPost, "/api/profile-completion"},
		{http.MethodGet, "/api/profile"},
		{http.MethodGet, "/api/help-posts"},
		{http.MethodGet, "/api/ws"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodPut, "/api/admin/feature-switches/help_posts_enabled"},
		{http.MethodGet, "/api/admin/monitoring"},
		{http.MethodGet, "/api/admin/help-posts"},
		{http.MethodDelete, "/api/admin/help-posts/12"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		var match mux.RouteMatch
		if !r.Match(req, &match) || match.MatchErr != nil {
			t.Errorf("%s %s is not routed", tc.method, tc.path)
		}
	}
}

// Admin moderation must work even with the member-facing help post switch
// off, so those routes cannot run through the switch gate
func TestAdminHelpPostRoutesBypassFeatureSwitch(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/help-posts/3", nil)
	var match mux.RouteMatch
	if !r.Match(req, &match) {
		t.Fatal("admin help post delete is not routed")
	}

	rr := httptest.NewRecorder()
	match.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated admin delete = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}
