package validation

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidUUID indicates that an identifier is not a well-formed UUID.
var ErrInvalidUUID = fmt.Errorf("invalid UUID format")

// ValidateUUID checks that id parses as a UUID. Owner and property
// identifiers are validated with this before any repository lookup.
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}
