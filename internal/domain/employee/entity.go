package employee

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type Employee struct {
	ID              string
	CompanyID       string
	Name            string
	DNI             string
	JobPosition     string
	PinHash         string
	HourlySalary    decimal.Decimal
	HourlyDeduction decimal.Decimal
	LateCount       int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// VerifyPIN compares a plain PIN against the stored hash.
func (e Employee) VerifyPIN(pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(e.PinHash), []byte(pin)) == nil
}

// HashPIN hashes a plain PIN for storage.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
