package payroll

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/attendance"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/employee"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/payroll"
	"golang.org/x/sync/errgroup"
)

// batchWorkers bounds concurrent per-employee recomputations in a
// whole-company run.
const batchWorkers = 8

type PayrollServiceImpl struct {
	payroll.CalculationRepository
	attendance.PunchRepository
	employee.EmployeeRepository

	// keyLocks serializes recomputations of the same (employee, period)
	// key so concurrent requests cannot interleave read-aggregate-upsert.
	keyLocks sync.Map
}

func toCalculationResponse(c payroll.Calculation) payroll.CalculationResponse {
	resp := payroll.CalculationResponse{
		ID:               c.ID,
		EmployeeID:       c.EmployeeID,
		PeriodStart:      c.PeriodStart.Format("2006-01-02"),
		PeriodEnd:        c.PeriodEnd.Format("2006-01-02"),
		TotalHoursWorked: c.TotalHoursWorked,
		LateIncidents:    c.LateIncidents,
		TotalLateMinutes: c.TotalLateMinutes,
		TotalEarnings:    c.TotalEarnings,
		TotalDeductions:  c.TotalDeductions,
		NetPay:           c.NetPay,
	}
	if c.EmployeeName != nil {
		resp.EmployeeName = *c.EmployeeName
	}
	return resp
}

// Calculate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, companyID string, req payroll.CalculateRequest) (payroll.CalculateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.CalculateResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.PeriodStart)
	end, _ := time.Parse("2006-01-02", req.PeriodEnd)
	if end.Before(start) {
		return payroll.CalculateResponse{}, payroll.ErrInvalidPeriod
	}

	var targets []employee.Employee
	if req.EmployeeID != "" {
		emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID)
		if err != nil {
			return payroll.CalculateResponse{}, err
		}
		targets = []employee.Employee{emp}
	} else {
		var err error
		targets, err = s.EmployeeRepository.ListByCompany(ctx, companyID, true)
		if err != nil {
			return payroll.CalculateResponse{}, err
		}
	}

	results := make([]payroll.Calculation, len(targets))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)

	for i, emp := range targets {
		i, emp := i, emp
		g.Go(func() error {
			calc, err := s.calculateOne(gCtx, companyID, emp, start, end)
			if err != nil {
				return err
			}
			results[i] = calc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return payroll.CalculateResponse{}, err
	}

	resp := payroll.CalculateResponse{
		PeriodStart:  req.PeriodStart,
		PeriodEnd:    req.PeriodEnd,
		Calculations: make([]payroll.CalculationResponse, 0, len(results)),
	}
	for i, calc := range results {
		calc.EmployeeName = &targets[i].Name
		resp.Calculations = append(resp.Calculations, toCalculationResponse(calc))
	}

	return resp, nil
}

func (s *PayrollServiceImpl) calculateOne(ctx context.Context, companyID string, emp employee.Employee, start, end time.Time) (payroll.Calculation, error) {
	key := emp.ID + "|" + start.Format("2006-01-02") + "|" + end.Format("2006-01-02")
	muAny, _ := s.keyLocks.LoadOrStore(key, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, emp.ID, start, end, companyID)
	if err != nil {
		return payroll.Calculation{}, err
	}

	_, totals := payroll.Aggregate(punches)

	rates := payroll.Rates{
		HourlySalary:    emp.HourlySalary,
		HourlyDeduction: emp.HourlyDeduction,
	}
	hours, earnings, deductions, netPay := payroll.Calculate(rates, totals)

	calc := payroll.Calculation{
		ID:               uuid.Must(uuid.NewV7()).String(),
		EmployeeID:       emp.ID,
		CompanyID:        companyID,
		PeriodStart:      start,
		PeriodEnd:        end,
		TotalHoursWorked: hours,
		LateIncidents:    totals.LateIncidents,
		TotalLateMinutes: totals.TotalLateMinutes,
		TotalEarnings:    earnings,
		TotalDeductions:  deductions,
		NetPay:           netPay,
	}

	return s.CalculationRepository.Upsert(ctx, calc)
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, companyID string, id string) (payroll.CalculationResponse, error) {
	calc, err := s.CalculationRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return payroll.CalculationResponse{}, err
	}
	return toCalculationResponse(calc), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, companyID string, req payroll.ListRequest) ([]payroll.CalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	filter := payroll.ListFilter{Limit: req.Limit}
	if req.EmployeeID != "" {
		filter.EmployeeID = &req.EmployeeID
	}
	if req.PeriodStart != "" {
		start, _ := time.Parse("2006-01-02", req.PeriodStart)
		filter.PeriodStart = &start
	}
	if req.PeriodEnd != "" {
		end, _ := time.Parse("2006-01-02", req.PeriodEnd)
		filter.PeriodEnd = &end
	}

	calcs, err := s.CalculationRepository.List(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.CalculationResponse, 0, len(calcs))
	for _, calc := range calcs {
		responses = append(responses, toCalculationResponse(calc))
	}

	return responses, nil
}

func NewPayrollService(
	calculationRepo payroll.CalculationRepository,
	punchRepo attendance.PunchRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		CalculationRepository: calculationRepo,
		PunchRepository:       punchRepo,
		EmployeeRepository:    employeeRepo,
	}
}
