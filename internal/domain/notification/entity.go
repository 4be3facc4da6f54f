package notification

import "time"

type NotificationType string

const (
	TypeTardiness        NotificationType = "tardiness"
	TypeVacationApproved NotificationType = "vacation_approved"
	TypeVacationRejected NotificationType = "vacation_rejected"
	TypeGeneral          NotificationType = "general"
)

// RecipientKind tags who a notification is addressed to. A tagged variant
// instead of a free-form type+id pair keeps invalid tags unrepresentable.
type RecipientKind string

const (
	RecipientAdmin    RecipientKind = "admin"
	RecipientEmployee RecipientKind = "employee"
)

type Recipient struct {
	Kind RecipientKind
	ID   string
}

func AdminRecipient(profileID string) Recipient {
	return Recipient{Kind: RecipientAdmin, ID: profileID}
}

func EmployeeRecipient(employeeID string) Recipient {
	return Recipient{Kind: RecipientEmployee, ID: employeeID}
}

func (r Recipient) Valid() bool {
	return (r.Kind == RecipientAdmin || r.Kind == RecipientEmployee) && r.ID != ""
}

type Notification struct {
	ID        string
	CompanyID string
	Recipient Recipient
	Type      NotificationType
	Title     string
	Message   string
	Data      map[string]any
	IsRead    bool
	CreatedAt time.Time
}
