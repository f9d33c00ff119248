package domain

import (
	"errors"
	"strings"
)

// ============================================================================
// Cheese Listing Errors
// ============================================================================

var (
	ErrCheeseListingNotFound = errors.New("cheese listing not found")
	ErrIdentifierAssigned    = errors.New("cheese listing identifier is already assigned")
	ErrInvalidIdentifier     = errors.New("cheese listing identifier must be positive")
	ErrNotPersisted          = errors.New("cheese listing has not been persisted")
	ErrInvalidPage           = errors.New("page must be a positive integer within range")
)

// Violation is a single failed constraint on one property.
type Violation struct {
	PropertyPath string `json:"propertyPath"`
	Message      string `json:"message"`
}

// ValidationError carries every violation found on a listing.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.PropertyPath+": "+v.Message)
	}
	return strings.Join(parts, "\n")
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
