package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/auth"
)

type Service interface {
	// GenerateAccessToken issues an HS256 token for an admin profile or an
	// employee. employeeID is nil for admin tokens.
	GenerateAccessToken(subjectID string, companyID string, employeeID *string, role auth.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey      string
	expirationTime time.Duration
	tokenAuth      *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, expirationTime string) (Service, error) {
	expDuration, err := time.ParseDuration(expirationTime)
	if err != nil {
		return nil, fmt.Errorf("invalid token expiration %q: %w", expirationTime, err)
	}

	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expDuration,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}, nil
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(subjectID string, companyID string, employeeID *string, role auth.Role) (string, int64, error) {
	expiresAt := time.Now().Add(j.expirationTime).Unix()

	claims := map[string]interface{}{
		"sub":        subjectID,
		"company_id": companyID,
		"role":       string(role),
		"exp":        expiresAt,
	}
	if employeeID != nil {
		claims["employee_id"] = *employeeID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, fmt.Errorf("encode access token: %w", err)
	}

	return tokenString, expiresAt, nil
}
