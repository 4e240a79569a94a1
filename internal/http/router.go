package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"community-backend/internal/handlers"
	"community-backend/internal/middleware"
)

// NewRouter wires every API endpoint with its middleware chain
func NewRouter(
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	introHandler *handlers.IntroHandler,
	profileHandler *handlers.ProfileCompletionHandler,
	invitationHandler *handlers.InvitationHandler,
	helpPostHandler *handlers.HelpPostHandler,
	referenceHandler *handlers.ReferenceHandler,
	locationHandler *handlers.LocationHandler,
	featureSwitchHandler *handlers.FeatureSwitchHandler,
	adminHandler *handlers.AdminHandler,
	monitoringHandler *handlers.MonitoringHandler,
	wsHandler *handlers.WSHandler,
	authMW *middleware.AuthMiddleware,
	maintenanceMW *middleware.MaintenanceMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Operational endpoints, no auth
	r.HandleFunc("/health", monitoringHandler.HealthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public endpoints: registration flow and the pre-login feature view
	r.HandleFunc("/api/register",
		maintenanceMW.RequireSwitch("registration_enabled", authHandler.Register)).Methods("POST")
	r.HandleFunc("/api/login",
		middleware.LoginRateLimiter.Middleware(authHandler.Login)).Methods("POST")
	r.HandleFunc("/api/invitations/validate", invitationHandler.Validate).Methods("GET")
	r.HandleFunc("/api/feature-switches", featureSwitchHandler.GetAll).Methods("GET")

	// Authenticated member endpoints. Writes are blocked during
	// maintenance mode; admins bypass the block
	member := func(next http.HandlerFunc) http.HandlerFunc {
		return authMW.RequireAuth(maintenanceMW.BlockWritesDuringMaintenance(next))
	}

	r.HandleFunc("/api/logout", member(authHandler.Logout)).Methods("POST")
	r.HandleFunc("/api/account", member(accountHandler.Me)).Methods("GET")
	r.HandleFunc("/api/flow/status", member(accountHandler.FlowStatus)).Methods("GET")

	r.HandleFunc("/api/intro-questions", member(introHandler.Submit)).Methods("POST")
	r.HandleFunc("/api/intro-questions", member(introHandler.Get)).Methods("GET")

	r.HandleFunc("/api/profile-completion", member(profileHandler.HandleStep)).Methods("POST")
	r.HandleFunc("/api/profile-completion/status", member(profileHandler.Status)).Methods("GET")
	r.HandleFunc("/api/profile", member(profileHandler.GetProfile)).Methods("GET")
	r.HandleFunc("/api/profile", member(profileHandler.UpdateBasics)).Methods("PUT")

	r.HandleFunc("/api/invitations",
		member(maintenanceMW.RequireSwitch("invitations_enabled",
			middleware.InvitationRateLimiter.Middleware(invitationHandler.Create)))).Methods("POST")
	r.HandleFunc("/api/invitations", member(invitationHandler.List)).Methods("GET")
	r.HandleFunc("/api/invitations/{id}", member(invitationHandler.Delete)).Methods("DELETE")

	helpPost := func(next http.HandlerFunc) http.HandlerFunc {
		return member(maintenanceMW.RequireSwitch("help_posts_enabled", next))
	}
	r.HandleFunc("/api/help-posts", helpPost(helpPostHandler.Handle)).Methods("POST")
	r.HandleFunc("/api/help-posts", helpPost(helpPostHandler.List)).Methods("GET")
	r.HandleFunc("/api/help-posts/{id}", helpPost(helpPostHandler.Get)).Methods("GET")
	r.HandleFunc("/api/help-posts/{id}", helpPost(helpPostHandler.Update)).Methods("PUT")
	r.HandleFunc("/api/help-posts/{id}", helpPost(helpPostHandler.Delete)).Methods("DELETE")

	r.HandleFunc("/api/reference/{kind}", member(referenceHandler.List)).Methods("GET")
	r.HandleFunc("/api/reference/{kind}/children", member(referenceHandler.Children)).Methods("GET")
	r.HandleFunc("/api/districts", member(locationHandler.Districts)).Methods("GET")
	r.HandleFunc("/api/post-offices", member(locationHandler.PostOffices)).Methods("GET")

	r.HandleFunc("/api/ws", authMW.RequireAuth(wsHandler.Connect)).Methods("GET")

	// Admin endpoints; RequireAdmin includes the auth check
	admin := authMW.RequireAdmin

	r.HandleFunc("/api/admin/users", admin(adminHandler.ListUsers)).Methods("GET")
	r.HandleFunc("/api/admin/users/{id}/approve", admin(adminHandler.Approve)).Methods("POST")
	r.HandleFunc("/api/admin/users/{id}/reject", admin(adminHandler.Reject)).Methods("POST")
	r.HandleFunc("/api/admin/login-logs", admin(adminHandler.LoginLogs)).Methods("GET")
	r.HandleFunc("/api/admin/action-logs", admin(adminHandler.ActionLogs)).Methods("GET")
	r.HandleFunc("/api/admin/feature-switches/{key}", admin(featureSwitchHandler.Update)).Methods("PUT")
	r.HandleFunc("/api/admin/monitoring", admin(monitoringHandler.System)).Methods("GET")

	// Moderation stays reachable even when the member-facing help post
	// switch is off
	r.HandleFunc("/api/admin/help-posts", admin(helpPostHandler.List)).Methods("GET")
	r.HandleFunc("/api/admin/help-posts/{id}", admin(helpPostHandler.Delete)).Methods("DELETE")

	return r
}
