package auth

import "context"

// AuthService authenticates admins by email and password, and employees
// by national identity number and PIN. Both paths issue a signed access
// token scoped to the caller's company.
type AuthService interface {
	AdminLogin(ctx context.Context, req *AdminLoginRequest) (*LoginResponse, error)
	EmployeeLogin(ctx context.Context, req *EmployeeLoginRequest) (*LoginResponse, error)
}
