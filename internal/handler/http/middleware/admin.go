package middleware

import (
	"net/http"

	"github.com/puntualhq/timeclock-backend-go/internal/domain/auth"
	"github.com/puntualhq/timeclock-backend-go/internal/handler/http/response"
)

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r)
		if !ok {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		if claims.Role != auth.RoleAdmin {
			response.Forbidden(w, "Admin privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// EmployeeOnly guards routes that act on the caller's own employee record.
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r)
		if !ok {
			response.Unauthorized(w, "Missing or invalid token")
			return
		}

		if claims.Role != auth.RoleEmployee || claims.EmployeeID == "" {
			response.Forbidden(w, "Employee account required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
