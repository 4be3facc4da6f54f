package payroll

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/puntualhq/timeclock-backend-go/internal/domain/attendance"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/employee"
	"github.com/puntualhq/timeclock-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCalcRepo struct {
	mu    sync.Mutex
	byKey map[string]payroll.Calculation
}

func newFakeCalcRepo() *fakeCalcRepo {
	return &fakeCalcRepo{byKey: map[string]payroll.Calculation{}}
}

func calcKey(employeeID string, start, end time.Time) string {
	return employeeID + "|" + start.Format("2006-01-02") + "|" + end.Format("2006-01-02")
}

func (f *fakeCalcRepo) Upsert(_ context.Context, calc payroll.Calculation) (payroll.Calculation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := calcKey(calc.EmployeeID, calc.PeriodStart, calc.PeriodEnd)
	if existing, ok := f.byKey[key]; ok {
		calc.ID = existing.ID
		calc.CreatedAt = existing.CreatedAt
	} else {
		calc.CreatedAt = time.Now()
	}
	calc.UpdatedAt = time.Now()
	f.byKey[key] = calc
	return calc, nil
}

func (f *fakeCalcRepo) GetByID(_ context.Context, id string, companyID string) (payroll.Calculation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, calc := range f.byKey {
		if calc.ID == id && calc.CompanyID == companyID {
			return calc, nil
		}
	}
	return payroll.Calculation{}, payroll.ErrCalculationNotFound
}

func (f *fakeCalcRepo) List(_ context.Context, companyID string, filter payroll.ListFilter) ([]payroll.Calculation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []payroll.Calculation
	for _, calc := range f.byKey {
		if calc.CompanyID != companyID {
			continue
		}
		if filter.EmployeeID != nil && calc.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, calc)
	}
	return out, nil
}

type fakePunchRepo struct {
	punches []attendance.Punch
}

func (f *fakePunchRepo) CreateWithLateCount(_ context.Context, p attendance.Punch) (attendance.Punch, error) {
	f.punches = append(f.punches, p)
	return p, nil
}

func (f *fakePunchRepo) ListByEmployeeAndDate(context.Context, string, time.Time, string) ([]attendance.Punch, error) {
	return nil, nil
}

func (f *fakePunchRepo) ListByEmployeeAndRange(_ context.Context, employeeID string, start, end time.Time, _ string) ([]attendance.Punch, error) {
	var out []attendance.Punch
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && !p.RecordDate.Before(start) && !p.RecordDate.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListByCompanyAndDate(context.Context, string, time.Time) ([]attendance.Punch, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByDNI(context.Context, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListByCompany(_ context.Context, companyID string, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.CompanyID == companyID && (!activeOnly || e.IsActive) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(context.Context, employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) Deactivate(context.Context, string, string) error { return nil }

func day(t *testing.T, s string) time.Time {
	parsed, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return parsed
}

func punchAt(t *testing.T, employeeID, date string, kind attendance.PunchKind, hour, minute int) attendance.Punch {
	d := day(t, date)
	return attendance.Punch{
		EmployeeID: employeeID,
		CompanyID:  "co-1",
		Kind:       kind,
		Timestamp:  time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC),
		RecordDate: d,
	}
}

func fullDay(t *testing.T, employeeID, date string) []attendance.Punch {
	return []attendance.Punch{
		punchAt(t, employeeID, date, attendance.PunchEntrance, 8, 0),
		punchAt(t, employeeID, date, attendance.PunchLunchStart, 12, 0),
		punchAt(t, employeeID, date, attendance.PunchLunchEnd, 13, 0),
		punchAt(t, employeeID, date, attendance.PunchExit, 17, 0),
	}
}

func fixture() (*fakeCalcRepo, *fakePunchRepo, *fakeEmployeeRepo, payroll.PayrollService) {
	calcRepo := newFakeCalcRepo()
	punchRepo := &fakePunchRepo{}
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			ID: "emp-1", CompanyID: "co-1", Name: "Maria Lopez", IsActive: true,
			HourlySalary:    decimal.NewFromInt(10),
			HourlyDeduction: decimal.NewFromInt(6),
		},
	}}

	svc := NewPayrollService(calcRepo, punchRepo, employeeRepo)
	return calcRepo, punchRepo, employeeRepo, svc
}

func TestCalculate_SingleEmployee(t *testing.T) {
	ctx := context.Background()
	_, punchRepo, _, svc := fixture()

	punchRepo.punches = fullDay(t, "emp-1", "2026-03-02")

	resp, err := svc.Calculate(ctx, "co-1", payroll.CalculateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-03-02",
		PeriodEnd:   "2026-03-06",
	})
	require.NoError(t, err)
	require.Len(t, resp.Calculations, 1)

	calc := resp.Calculations[0]
	// 8h worked at 10/h, no tardiness.
	assert.Equal(t, "8", calc.TotalHoursWorked.String())
	assert.Equal(t, "80", calc.TotalEarnings.String())
	assert.Equal(t, "0", calc.TotalDeductions.String())
	assert.Equal(t, "80", calc.NetPay.String())
	assert.Equal(t, "Maria Lopez", calc.EmployeeName)
}

func TestCalculate_LateMinutesDeducted(t *testing.T) {
	ctx := context.Background()
	_, punchRepo, _, svc := fixture()

	entrance := punchAt(t, "emp-1", "2026-03-02", attendance.PunchEntrance, 8, 20)
	entrance.IsLate = true
	entrance.MinutesLate = 20
	punchRepo.punches = []attendance.Punch{
		entrance,
		punchAt(t, "emp-1", "2026-03-02", attendance.PunchExit, 17, 0),
	}

	resp, err := svc.Calculate(ctx, "co-1", payroll.CalculateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-03-02",
		PeriodEnd:   "2026-03-02",
	})
	require.NoError(t, err)
	require.Len(t, resp.Calculations, 1)

	calc := resp.Calculations[0]
	assert.Equal(t, 1, calc.LateIncidents)
	assert.Equal(t, 20, calc.TotalLateMinutes)
	// 20/60 h at 6/h = 2.
	assert.True(t, calc.TotalDeductions.Equal(decimal.NewFromInt(2)), "deductions = %s", calc.TotalDeductions)
	assert.True(t, calc.NetPay.Equal(calc.TotalEarnings.Sub(decimal.NewFromInt(2))))
}

func TestCalculate_IdempotentUpsert(t *testing.T) {
	ctx := context.Background()
	calcRepo, punchRepo, _, svc := fixture()

	punchRepo.punches = fullDay(t, "emp-1", "2026-03-02")

	req := payroll.CalculateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-15",
	}

	first, err := svc.Calculate(ctx, "co-1", req)
	require.NoError(t, err)
	second, err := svc.Calculate(ctx, "co-1", req)
	require.NoError(t, err)

	// One stored row per key, stable id, identical figures.
	assert.Len(t, calcRepo.byKey, 1)
	assert.Equal(t, first.Calculations[0].ID, second.Calculations[0].ID)
	assert.Equal(t, first.Calculations[0].NetPay.String(), second.Calculations[0].NetPay.String())
}

func TestCalculate_AllActiveEmployees(t *testing.T) {
	ctx := context.Background()
	calcRepo, punchRepo, employeeRepo, svc := fixture()

	employeeRepo.employees = append(employeeRepo.employees,
		employee.Employee{
			ID: "emp-2", CompanyID: "co-1", Name: "Jorge Diaz", IsActive: true,
			HourlySalary: decimal.NewFromInt(12), HourlyDeduction: decimal.NewFromInt(5),
		},
		employee.Employee{
			ID: "emp-3", CompanyID: "co-1", Name: "Ana Ruiz", IsActive: false,
			HourlySalary: decimal.NewFromInt(12), HourlyDeduction: decimal.NewFromInt(5),
		},
	)

	punchRepo.punches = append(
		fullDay(t, "emp-1", "2026-03-02"),
		fullDay(t, "emp-2", "2026-03-02")...,
	)

	resp, err := svc.Calculate(ctx, "co-1", payroll.CalculateRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-15",
	})
	require.NoError(t, err)

	// Inactive emp-3 is skipped.
	assert.Len(t, resp.Calculations, 2)
	assert.Len(t, calcRepo.byKey, 2)
}

func TestCalculate_EmptyPeriodYieldsZeroes(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := fixture()

	resp, err := svc.Calculate(ctx, "co-1", payroll.CalculateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-15",
	})
	require.NoError(t, err)
	require.Len(t, resp.Calculations, 1)

	calc := resp.Calculations[0]
	assert.True(t, calc.TotalHoursWorked.IsZero())
	assert.True(t, calc.NetPay.IsZero())
	assert.Zero(t, calc.LateIncidents)
}

func TestCalculate_InvalidPeriod(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := fixture()

	_, err := svc.Calculate(ctx, "co-1", payroll.CalculateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-03-15",
		PeriodEnd:   "2026-03-01",
	})
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestCalculate_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := fixture()

	_, err := svc.Calculate(ctx, "co-1", payroll.CalculateRequest{
		EmployeeID:  "nope",
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-15",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCalculate_ConcurrentSameKey(t *testing.T) {
	ctx := context.Background()
	calcRepo, punchRepo, _, svc := fixture()

	punchRepo.punches = fullDay(t, "emp-1", "2026-03-02")

	req := payroll.CalculateRequest{
		EmployeeID:  "emp-1",
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-15",
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Calculate(ctx, "co-1", req)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, calcRepo.byKey, 1)
}

func TestGet_NotFound(t *testing.T) {
	ctx := context.Background()
	_, _, _, svc := fixture()

	_, err := svc.Get(ctx, "co-1", "missing")
	assert.ErrorIs(t, err, payroll.ErrCalculationNotFound)
}

func TestList_FilterByEmployee(t *testing.T) {
	ctx := context.Background()
	_, punchRepo, employeeRepo, svc := fixture()

	employeeRepo.employees = append(employeeRepo.employees, employee.Employee{
		ID: "emp-2", CompanyID: "co-1", Name: "Jorge Diaz", IsActive: true,
		HourlySalary: decimal.NewFromInt(12), HourlyDeduction: decimal.NewFromInt(5),
	})
	punchRepo.punches = append(
		fullDay(t, "emp-1", "2026-03-02"),
		fullDay(t, "emp-2", "2026-03-02")...,
	)

	_, err := svc.Calculate(ctx, "co-1", payroll.CalculateRequest{
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-15",
	})
	require.NoError(t, err)

	list, err := svc.List(ctx, "co-1", payroll.ListRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "emp-1", list[0].EmployeeID)
}
