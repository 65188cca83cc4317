package validation

import (
	"strings"

	"github.com/mdejong/Flip-Budget-Backend/internal/api/request"
)

// ValidateCreateNote checks a note creation request.
func ValidateCreateNote(req request.CreateNoteRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Body) == "" {
		errors["body"] = "body is required"
	}

	if len(req.Title) > 200 {
		errors["title"] = "title must be 200 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateNote checks a partial note update.
func ValidateUpdateNote(req request.UpdateNoteRequest) error {
	errors := make(map[string]string)

	if req.Body != nil && strings.TrimSpace(*req.Body) == "" {
		errors["body"] = "body cannot be empty"
	}

	if req.Title != nil && len(*req.Title) > 200 {
		errors["title"] = "title must be 200 characters or less"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
