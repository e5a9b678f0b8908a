package coverage

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

// Request is a media coverage request submitted by an office. Dates and
// times are stored in their normalized Gregorian forms only; the Ethiopian
// period label is kept redundantly for display.
type Request struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	OfficeName   string     `json:"office_name" db:"office_name"`
	SubmittedBy  string     `json:"submitted_by" db:"submitted_by"`
	CoverageDate time.Time  `json:"coverage_date" db:"coverage_date"`
	CoverageTime string     `json:"coverage_time" db:"coverage_time"` // "HH:MM:SS"
	TimePeriod   string     `json:"time_period,omitempty" db:"time_period"`
	Location     string     `json:"location" db:"location"`
	Agenda       string     `json:"agenda" db:"agenda"`
	Status       Status     `json:"status" db:"status"`
	AdminReason  *string    `json:"admin_reason,omitempty" db:"admin_reason"`
	ReviewedBy   *string    `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Summary counts requests per status for the admin dashboard.
type Summary struct {
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
	Expired  int64 `json:"expired"`
	Total    int64 `json:"total"`
}
