package validation

import (
	"fmt"
	"strings"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
)

// ValidPropertyType contains the allowed property type values.
var ValidPropertyType = map[string]bool{
	"residential": true, "commercial": true, "industrial": true, "land": true,
}

// ValidateCreateProperty validates a property creation request.
// Checks all required fields and validates their formats and constraints.
//
// Required fields:
//   - ownerId: Must be a valid UUID
//   - name: Must be non-empty
//   - type: Must be one of: residential, commercial, industrial, land
//   - purchaseValue: Must be positive
//
// Optional fields (validated if provided):
//   - currentValue: Must be non-negative
//   - rentAmount: Must be non-negative
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateProperty(req request.CreatePropertyRequest) error {
	ownerErr := ValidateUUID(req.OwnerID)
	if ownerErr != nil {
		return ownerErr
	}

	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidPropertyType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.PurchaseValue <= 0.0 {
		errors["purchaseValue"] = "purchaseValue must be positive"
	}

	if req.CurrentValue != nil && *req.CurrentValue < 0.0 {
		errors["currentValue"] = "currentValue cannot be negative"
	}

	if req.RentAmount < 0.0 {
		errors["rentAmount"] = "rentAmount cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpdateProperty validates a property update request.
// All fields are optional, but if provided, they must meet the same
// constraints as create. The purchase value is immutable and has no
// update field.
func ValidateUpdateProperty(req request.UpdatePropertyRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.Type != nil {
		if strings.TrimSpace(*req.Type) == "" {
			errors["type"] = "type cannot be empty"
		} else if !ValidPropertyType[*req.Type] {
			errors["type"] = fmt.Sprintf("invalid type: %s", *req.Type)
		}
	}

	if req.CurrentValueSet && req.CurrentValue != nil && *req.CurrentValue < 0.0 {
		errors["currentValue"] = "currentValue cannot be negative"
	}

	if req.RentAmount != nil && *req.RentAmount < 0.0 {
		errors["rentAmount"] = "rentAmount cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
