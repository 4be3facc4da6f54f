package employee

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:              e.ID,
		CompanyID:       e.CompanyID,
		Name:            e.Name,
		DNI:             e.DNI,
		JobPosition:     e.JobPosition,
		HourlySalary:    e.HourlySalary,
		HourlyDeduction: e.HourlyDeduction,
		LateCount:       e.LateCount,
		IsActive:        e.IsActive,
	}
}

func generatePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("failed to generate pin: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}

// Create implements employee.EmployeeService. When no PIN is supplied a
// random four digit one is generated and returned once in the response.
func (s *EmployeeServiceImpl) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	pin := req.PIN
	generated := false
	if pin == "" {
		var err error
		pin, err = generatePIN()
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		generated = true
	}

	pinHash, err := employee.HashPIN(pin)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash pin: %w", err)
	}

	emp := employee.Employee{
		ID:          uuid.Must(uuid.NewV7()).String(),
		CompanyID:   companyID,
		Name:        req.Name,
		DNI:         req.DNI,
		JobPosition: req.JobPosition,
		PinHash:     pinHash,
		IsActive:    true,
	}
	if req.HourlySalary != nil {
		emp.HourlySalary = *req.HourlySalary
	} else {
		emp.HourlySalary = decimal.Zero
	}
	if req.HourlyDeduction != nil {
		emp.HourlyDeduction = *req.HourlyDeduction
	} else {
		emp.HourlyDeduction = decimal.Zero
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	resp := toEmployeeResponse(created)
	if generated {
		resp.GeneratedPIN = pin
	}

	return resp, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, companyID string, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, companyID string, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, companyID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.JobPosition != nil {
		emp.JobPosition = *req.JobPosition
	}
	if req.PIN != nil {
		pinHash, err := employee.HashPIN(*req.PIN)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to hash pin: %w", err)
		}
		emp.PinHash = pinHash
	}
	if req.HourlySalary != nil {
		emp.HourlySalary = *req.HourlySalary
	}
	if req.HourlyDeduction != nil {
		emp.HourlyDeduction = *req.HourlyDeduction
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

// Deactivate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, companyID string, id string) error {
	return s.EmployeeRepository.Deactivate(ctx, id, companyID)
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}
