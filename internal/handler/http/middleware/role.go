package middleware

import (
	"net/http"

	"github.com/cliniquenova/timeclock-backend-go/internal/domain/auth"
	"github.com/cliniquenova/timeclock-backend-go/internal/domain/user"
	"github.com/cliniquenova/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func roleFromContext(r *http.Request) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	role, ok := claims["role"].(string)
	if !ok {
		return "", auth.ErrInvalidToken
	}

	return user.Role(role), nil
}

// RequireAdmin rejects requests whose token does not carry the admin role.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager admits both managers and admins.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := roleFromContext(r)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if role != user.RoleAdmin && role != user.RoleManager {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
