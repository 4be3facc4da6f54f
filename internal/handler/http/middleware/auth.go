package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/auth"
	"github.com/puntualhq/timeclock-backend-go/internal/handler/http/response"
)

// Claims is the set of token claims every authenticated request carries.
type Claims struct {
	SubjectID  string
	CompanyID  string
	EmployeeID string // empty for admins
	Role       auth.Role
}

// ClaimsFromContext extracts the verified token claims. It only works below
// the jwtauth.Verifier and AuthRequired middlewares.
func ClaimsFromContext(r *http.Request) (Claims, bool) {
	_, raw, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return Claims{}, false
	}

	sub, _ := raw["sub"].(string)
	companyID, _ := raw["company_id"].(string)
	role, _ := raw["role"].(string)
	if sub == "" || companyID == "" || role == "" {
		return Claims{}, false
	}

	claims := Claims{
		SubjectID: sub,
		CompanyID: companyID,
		Role:      auth.Role(role),
	}
	if employeeID, ok := raw["employee_id"].(string); ok {
		claims.EmployeeID = employeeID
	}

	return claims, true
}

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			if _, ok := ClaimsFromContext(r); !ok {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
