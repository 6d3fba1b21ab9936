package employee

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

type Employee struct {
	ID           string
	EmployeeCode string // unique, immutable business key
	Name         string
	Email        string
	Phone        string
	Department   string
	Designation  string
	JoiningDate  time.Time
	Salary       decimal.Decimal
	AvatarURL    *string
	Documents    Documents
	Status       Status
	UserID       *string
	ShiftID      *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	ShiftName *string
}

// Document is an uploaded file attached to an employee record.
type Document struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Documents is stored as a JSONB column.
type Documents []Document

func (d Documents) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	return json.Marshal(d)
}

func (d *Documents) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Documents: invalid type")
	}
	return json.Unmarshal(bytes, d)
}
