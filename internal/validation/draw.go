package validation

import (
	"time"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

func validDrawStatus(status string) bool {
	for _, s := range model.DrawStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func validDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// ValidateCreateDraw checks a draw creation request.
func ValidateCreateDraw(req request.CreateDrawRequest) error {
	errors := make(map[string]string)

	if req.VendorID != nil {
		if err := ValidateUUID(*req.VendorID); err != nil {
			errors["vendorId"] = "vendorId must be a valid UUID"
		}
	}

	if req.Number <= 0 {
		errors["number"] = "number must be positive"
	}

	if req.Amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}

	if req.Status != "" && !validDrawStatus(req.Status) {
		errors["status"] = "status must be one of scheduled, requested, paid, cancelled"
	}

	if req.DueDate == "" {
		errors["dueDate"] = "dueDate is required"
	} else if !validDate(req.DueDate) {
		errors["dueDate"] = "dueDate must be formatted YYYY-MM-DD"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateDraw checks a partial draw update.
func ValidateUpdateDraw(req request.UpdateDrawRequest) error {
	errors := make(map[string]string)

	if req.VendorID != nil && *req.VendorID != "" {
		if err := ValidateUUID(*req.VendorID); err != nil {
			errors["vendorId"] = "vendorId must be a valid UUID"
		}
	}

	if req.Number != nil && *req.Number <= 0 {
		errors["number"] = "number must be positive"
	}

	if req.Amount != nil && *req.Amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}

	if req.Status != nil && !validDrawStatus(*req.Status) {
		errors["status"] = "status must be one of scheduled, requested, paid, cancelled"
	}

	if req.DueDate != nil && !validDate(*req.DueDate) {
		errors["dueDate"] = "dueDate must be formatted YYYY-MM-DD"
	}

	if req.PaidDate != nil && *req.PaidDate != "" && !validDate(*req.PaidDate) {
		errors["paidDate"] = "paidDate must be formatted YYYY-MM-DD"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
