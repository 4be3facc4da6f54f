package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation is the derived payroll result for one employee over one
// inclusive date period. It is always rebuildable from the employee's
// punches plus the rate fields as they stood at computation time; a
// recomputation for the same (employee, period) key overwrites the stored
// row.
type Calculation struct {
	ID               string
	EmployeeID       string
	CompanyID        string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	TotalHoursWorked decimal.Decimal
	LateIncidents    int
	TotalLateMinutes int
	TotalEarnings    decimal.Decimal
	TotalDeductions  decimal.Decimal
	NetPay           decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}

// Rates are the employee fields payroll derives money from.
type Rates struct {
	HourlySalary    decimal.Decimal
	HourlyDeduction decimal.Decimal
}

// Calculate turns aggregated period totals into money figures.
//
// earnings    = hours worked x hourly salary
// deductions  = (late minutes / 60) x hourly deduction
// net pay     = earnings - deductions, deliberately not clamped at zero
//
// The same totals and rates always produce identical output.
func Calculate(rates Rates, totals PeriodTotals) (hours, earnings, deductions, netPay decimal.Decimal) {
	sixty := decimal.NewFromInt(60)

	hours = decimal.NewFromInt(int64(totals.TotalWorkedMinutes)).Div(sixty)
	earnings = hours.Mul(rates.HourlySalary)
	deductions = decimal.NewFromInt(int64(totals.TotalLateMinutes)).Div(sixty).Mul(rates.HourlyDeduction)
	netPay = earnings.Sub(deductions)
	return hours, earnings, deductions, netPay
}
