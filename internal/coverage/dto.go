package coverage

import "time"

// CreateRequest carries a new submission. Date and time arrive as the raw
// Ethiopian strings the form widgets produce ("DD MM YYYY" and
// "HH:MM PERIOD"); the service normalizes them to Gregorian forms.
type CreateRequest struct {
	OfficeName    string `json:"office_name" validate:"required,max=200"`
	SubmittedBy   string `json:"submitted_by" validate:"required,max=100"`
	EthiopianDate string `json:"ethiopian_date" validate:"required"`
	EthiopianTime string `json:"ethiopian_time" validate:"required"`
	Location      string `json:"location" validate:"required,max=300"`
	Agenda        string `json:"agenda" validate:"required,max=2000"`
}

type ReviewAction string

const (
	ReviewAccept ReviewAction = "accept"
	ReviewReject ReviewAction = "reject"
)

// ReviewRequest records an administrator's decision on a pending request.
// A rejection must carry a reason.
type ReviewRequest struct {
	Action     ReviewAction `json:"action" validate:"required,oneof=accept reject"`
	Reason     string       `json:"reason" validate:"required_if=Action reject,max=1000"`
	ReviewedBy string       `json:"reviewed_by" validate:"required,max=100"`
}

type ListRequest struct {
	Status   *Status    `json:"status,omitempty"`
	Office   *string    `json:"office,omitempty"`
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
	Limit    int        `json:"limit" validate:"gte=0,lte=500"`
	Offset   int        `json:"offset" validate:"gte=0"`
}

// RequestView decorates a stored request with its Ethiopian display
// strings for read paths.
type RequestView struct {
	Request
	EthiopianDate string `json:"ethiopian_date"`
	EthiopianTime string `json:"ethiopian_time"`
	Expired       bool   `json:"expired"`
}
