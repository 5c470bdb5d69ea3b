package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// --- Application Status Enum ---
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
)

// statusAccepted is a historical alias some older clients still send on
// create/update. It is normalized to StatusOffer at the API boundary and
// never stored.
const statusAccepted = "Accepted"

// NormalizeStatus maps the legacy "Accepted" alias onto the canonical set.
// The returned value is not guaranteed to be valid; callers check with
// IsValid afterward.
func NormalizeStatus(s string) Status {
	if s == statusAccepted {
		return StatusOffer
	}
	return Status(s)
}

// IsValid reports whether the status is one of the canonical values.
func (s Status) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for Status
func (s *Status) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Status: value is not string or []byte")
		}
	}
	v := Status(strVal)
	if !v.IsValid() {
		return fmt.Errorf("invalid Status value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for Status
func (s Status) Value() (driver.Value, error) {
	return string(s), nil
}

// JobApplication represents one tracked job application.
type JobApplication struct {
	// Assigned by the repository on insert, never reassigned.
	ID uuid.UUID `json:"id" db:"id"`

	Company  string `json:"company" db:"company"`
	Position string `json:"position" db:"position"`
	Location string `json:"location" db:"location"`
	Status   Status `json:"status" db:"status"`

	// ISO 8601 calendar date (YYYY-MM-DD), stored as text. Listing order
	// relies on the lexicographic order of this column.
	Date string `json:"date" db:"date"`

	// Optional fields are NULL in the store when absent and omitted from
	// JSON, never serialized as empty strings.
	Notes   *string `json:"notes,omitempty" db:"notes"`
	Salary  *string `json:"salary,omitempty" db:"salary"`
	Contact *string `json:"contact,omitempty" db:"contact"`
	URL     *string `json:"url,omitempty" db:"url"`
}
