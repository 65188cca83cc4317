package request

// CreateDrawRequest represents the request body for scheduling a draw.
// Dates are "2006-01-02" strings.
type CreateDrawRequest struct {
	VendorID    *string `json:"vendorId"`
	Number      int     `json:"number"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	DueDate     string  `json:"dueDate"`
}

// UpdateDrawRequest represents a partial update of a draw. Setting the
// status to paid without a paid date stamps today.
type UpdateDrawRequest struct {
	VendorID    *string  `json:"vendorId,omitempty"`
	Number      *int     `json:"number,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Status      *string  `json:"status,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	PaidDate    *string  `json:"paidDate,omitempty"`
}
