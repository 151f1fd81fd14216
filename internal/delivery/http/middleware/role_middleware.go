package middleware

import (
	"net/http"
	"slices"

	"hotel-listing/internal/domain/entity"
	"hotel-listing/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Roles are read from context (set by AuthMiddleware from JWT claims)
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roles, ok := GetRolesFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := slices.ContainsFunc(roles, func(role string) bool {
				return slices.Contains(allowedRoles, role)
			})
			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdministrator is a convenience middleware for administrator-only endpoints
func RequireAdministrator(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdministrator)(next)
}
