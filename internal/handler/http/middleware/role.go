package middleware

import (
	"net/http"

	"github.com/facade-tech/workforce-backend-go/internal/domain/auth"
	"github.com/facade-tech/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireAdmin requires the admin sentinel identity
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(next, auth.ErrAdminAccessRequired, auth.RoleAdmin)
}

// RequireManager requires manager or admin role
func RequireManager(next http.Handler) http.Handler {
	return requireRole(next, auth.ErrManagerAccessRequired, auth.RoleAdmin, auth.RoleManager)
}

// RequireRecorder requires a role allowed to record attendance and
// advances: admin or supervisor
func RequireRecorder(next http.Handler) http.Handler {
	return requireRole(next, auth.ErrSupervisorAccessRequired, auth.RoleAdmin, auth.RoleSupervisor)
}

func requireRole(next http.Handler, denied error, allowed ...auth.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, denied)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, denied)
			return
		}

		role := auth.Role(roleStr)
		for _, candidate := range allowed {
			if role == candidate {
				next.ServeHTTP(w, r)
				return
			}
		}
		response.HandleError(w, denied)
	})
}
