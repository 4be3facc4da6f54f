package vacation

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type VacationRequest struct {
	ID              string
	EmployeeID      string
	CompanyID       string
	StartDate       time.Time
	EndDate         time.Time
	Reason          *string
	Status          Status
	ReviewedAt      *time.Time
	ReviewedBy      *string // profile id
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	EmployeeName *string
}
