package validation

import (
	"strings"
	"time"

	"github.com/brickfolio/property-portfolio-backend/internal/api/request"
)

// ValidateLiquidateProperty validates a liquidation request.
//
// Required fields:
//   - saleValue: Must be non-negative
//   - saleDate: Must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateLiquidateProperty(req request.LiquidatePropertyRequest) error {
	errors := make(map[string]string)

	if req.SaleValue < 0.0 {
		errors["saleValue"] = "saleValue cannot be negative"
	}

	if strings.TrimSpace(req.SaleDate) == "" {
		errors["saleDate"] = "saleDate is required"
	} else if _, err := time.Parse("2006-01-02", req.SaleDate); err != nil {
		errors["saleDate"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
