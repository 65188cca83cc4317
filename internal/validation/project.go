package validation

import (
	"strings"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

func validStatus(status string) bool {
	for _, s := range model.ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// ValidateCreateProject checks a project creation request. Monetary fields
// must be non-negative; status must be one of the lifecycle statuses (empty
// defaults to lead at the service layer).
func ValidateCreateProject(req request.CreateProjectRequest) error {
	errors := make(map[string]string)

	// Required field
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if req.Status != "" && !validStatus(req.Status) {
		errors["status"] = "status must be one of " + strings.Join(model.ProjectStatuses, ", ")
	}

	validateFinancials(errors, req.ARV, req.PurchasePrice, req.RehabBudget,
		req.ClosingCosts, req.HoldingCostsMonthly, req.HoldMonths,
		req.SellingCostPercent, req.ContingencyPercent)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateProject checks a partial project update; only provided
// fields are validated.
func ValidateUpdateProject(req request.UpdateProjectRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Status != nil && !validStatus(*req.Status) {
		errors["status"] = "status must be one of " + strings.Join(model.ProjectStatuses, ", ")
	}

	checkNonNegative(errors, "arv", req.ARV)
	checkNonNegative(errors, "purchasePrice", req.PurchasePrice)
	checkNonNegative(errors, "rehabBudget", req.RehabBudget)
	checkNonNegative(errors, "closingCosts", req.ClosingCosts)
	checkNonNegative(errors, "holdingCostsMonthly", req.HoldingCostsMonthly)
	checkNonNegative(errors, "holdMonths", req.HoldMonths)
	checkPercent(errors, "sellingCostPercent", req.SellingCostPercent)
	checkPercent(errors, "contingencyPercent", req.ContingencyPercent)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateFinancials(errors map[string]string, arv, purchasePrice *float64,
	rehabBudget, closingCosts, holdingMonthly, holdMonths, sellingPercent, contingencyPercent float64) {

	checkNonNegative(errors, "arv", arv)
	checkNonNegative(errors, "purchasePrice", purchasePrice)
	checkNonNegative(errors, "rehabBudget", &rehabBudget)
	checkNonNegative(errors, "closingCosts", &closingCosts)
	checkNonNegative(errors, "holdingCostsMonthly", &holdingMonthly)
	checkNonNegative(errors, "holdMonths", &holdMonths)
	checkPercent(errors, "sellingCostPercent", &sellingPercent)
	checkPercent(errors, "contingencyPercent", &contingencyPercent)
}

func checkNonNegative(errors map[string]string, field string, value *float64) {
	if value != nil && *value < 0 {
		errors[field] = field + " cannot be negative"
	}
}

func checkPercent(errors map[string]string, field string, value *float64) {
	if value == nil {
		return
	}
	if *value < 0 {
		errors[field] = field + " cannot be negative"
	} else if *value > 100 {
		errors[field] = field + " cannot exceed 100"
	}
}
