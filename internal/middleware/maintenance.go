package middleware

import (
	"net/http"
)

// SwitchChecker reports whether a named feature switch is enabled
type SwitchChecker interface {
	IsEnabled(key string) bool
}

// MaintenanceMiddleware blocks write operations while maintenance_mode is on
// Admins bypass the restriction
type MaintenanceMiddleware struct {
	switches SwitchChecker
}

func NewMaintenanceMiddleware(switches SwitchChecker) *MaintenanceMiddleware {
	return &MaintenanceMiddleware{switches: switches}
}

// BlockWritesDuringMaintenance rejects non-GET requests in maintenance mode
func (m *MaintenanceMiddleware) BlockWritesDuringMaintenance(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		role, ok := GetRoleFromContext(r.Context())
		if ok && role == "admin" {
			next.ServeHTTP(w, r)
			return
		}

		if m.switches.IsEnabled("maintenance_mode") {
			http.Error(w, "System is under maintenance. Please try again later.", http.StatusServiceUnavailable)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// RequireSwitch rejects the request when the named feature switch is off
func (m *MaintenanceMiddleware) RequireSwitch(key string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.switches.IsEnabled(key) {
			http.Error(w, "This feature is currently disabled", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}
}
