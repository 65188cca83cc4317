package validation

import (
	"strings"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
)

// ValidateCreateVendor checks a vendor creation request.
func ValidateCreateVendor(req request.CreateVendorRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if req.Email != "" && !strings.Contains(req.Email, "@") {
		errors["email"] = "email is not valid"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateVendor checks a partial vendor update.
func ValidateUpdateVendor(req request.UpdateVendorRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Email != nil && *req.Email != "" && !strings.Contains(*req.Email, "@") {
		errors["email"] = "email is not valid"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
