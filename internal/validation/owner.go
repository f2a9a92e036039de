package validation

import (
	"strings"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
)

func ValidateCreateOwner(req request.CreateOwnerRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(req.Email) == "" {
		errors["email"] = "email is required"
	} else if !strings.Contains(req.Email, "@") {
		errors["email"] = "email must be a valid address"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
