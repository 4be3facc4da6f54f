package auth

import (
	"context"
	"errors"

	"github.com/puntualhq/timeclock-backend-go/internal/domain/auth"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/employee"
	"github.com/puntualhq/timeclock-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	auth.ProfileRepository
	employee.EmployeeRepository
	jwtService jwt.Service
}

// AdminLogin implements auth.AuthService. A missing profile and a wrong
// password are indistinguishable to the caller.
func (s *AuthServiceImpl) AdminLogin(ctx context.Context, req *auth.AdminLoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, err := s.ProfileRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrProfileNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !profile.VerifyPassword(req.Password) {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(profile.ID, profile.CompanyID, nil, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Role:        string(auth.RoleAdmin),
		CompanyID:   profile.CompanyID,
		SubjectID:   profile.ID,
		Name:        profile.FullName,
	}, nil
}

// EmployeeLogin implements auth.AuthService.
func (s *AuthServiceImpl) EmployeeLogin(ctx context.Context, req *auth.EmployeeLoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByDNI(ctx, req.DNI)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !emp.IsActive {
		return nil, employee.ErrEmployeeInactive
	}

	if !emp.VerifyPIN(req.PIN) {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.CompanyID, &emp.ID, auth.RoleEmployee)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Role:        string(auth.RoleEmployee),
		CompanyID:   emp.CompanyID,
		SubjectID:   emp.ID,
		Name:        emp.Name,
	}, nil
}

func NewAuthService(
	profileRepo auth.ProfileRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		ProfileRepository:  profileRepo,
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
}
