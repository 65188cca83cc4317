package model

import "time"

// Draw payment statuses.
const (
	DrawScheduled = "scheduled"
	DrawRequested = "requested"
	DrawPaid      = "paid"
	DrawCancelled = "cancelled"
)

// DrawStatuses lists the valid draw statuses.
var DrawStatuses = []string{DrawScheduled, DrawRequested, DrawPaid, DrawCancelled}

// Draw is one scheduled payment against a project, optionally tied to a
// vendor. PaidDate is nil until the draw is released.
type Draw struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	VendorID    *string    `json:"vendorId"`
	Number      int        `json:"number"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	DueDate     time.Time  `json:"dueDate"`
	PaidDate    *time.Time `json:"paidDate"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// DrawTotals summarizes a project's draw schedule. Cancelled draws count
// toward neither side.
type DrawTotals struct {
	Scheduled float64 `json:"scheduled"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
}
