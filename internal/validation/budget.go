package validation

import (
	"strings"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
	"github.com/mdejong/Flip-Budget-Backend/internal/model"
)

// ValidateCreateBudgetLine checks a budget line creation request.
func ValidateCreateBudgetLine(req request.CreateBudgetLineRequest) error {
	errors := make(map[string]string)

	if !model.IsValidBudgetCategory(req.Category) {
		errors["category"] = "category must be one of the budget categories"
	}

	if strings.TrimSpace(req.Item) == "" {
		errors["item"] = "item is required"
	} else if len(req.Item) > 200 {
		errors["item"] = "item must be 200 characters or less"
	}

	checkNonNegative(errors, "qty", &req.Qty)
	checkNonNegative(errors, "rate", &req.Rate)
	checkNonNegative(errors, "underwritingAmount", &req.UnderwritingAmount)
	checkNonNegative(errors, "forecastAmount", &req.ForecastAmount)
	checkNonNegative(errors, "actualAmount", req.ActualAmount)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateBudgetLine checks a partial budget line update.
func ValidateUpdateBudgetLine(req request.UpdateBudgetLineRequest) error {
	errors := make(map[string]string)

	if req.Category != nil && !model.IsValidBudgetCategory(*req.Category) {
		errors["category"] = "category must be one of the budget categories"
	}

	if req.Item != nil {
		if strings.TrimSpace(*req.Item) == "" {
			errors["item"] = "item cannot be empty"
		} else if len(*req.Item) > 200 {
			errors["item"] = "item must be 200 characters or less"
		}
	}

	checkNonNegative(errors, "qty", req.Qty)
	checkNonNegative(errors, "rate", req.Rate)
	checkNonNegative(errors, "underwritingAmount", req.UnderwritingAmount)
	checkNonNegative(errors, "forecastAmount", req.ForecastAmount)
	checkNonNegative(errors, "actualAmount", req.ActualAmount)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
