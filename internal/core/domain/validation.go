package domain

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	TitleMinLength = 2
	TitleMaxLength = 50

	// Prices are stored in a 32-bit INTEGER column.
	PriceMin = math.MinInt32
	PriceMax = math.MaxInt32
)

const (
	msgNotBlank = "This value should not be blank."
	msgTooShort = "This value is too short. It should have %s characters or more."
	msgTooLong  = "Describe your cheese in 50 chars or less"

	msgGreaterOrEqual = "This value should be greater than or equal to %s."
	msgLessOrEqual    = "This value should be less than or equal to %s."
)

// listingConstraints mirrors the listing's writable state so the
// declarative rules can be checked in one pass.
type listingConstraints struct {
	Title       string `json:"title" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required"`
	Price       *int   `json:"price" validate:"required,min=-2147483648,max=2147483647"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the listing against its constraints and returns a
// *ValidationError listing every violation.
func (c *CheeseListing) Validate() error {
	err := validate.Struct(listingConstraints{
		Title:       c.title,
		Description: c.description,
		Price:       c.price,
	})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate cheese listing: %w", err)
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			PropertyPath: fe.Field(),
			Message:      violationMessage(fe),
		})
	}
	return &ValidationError{Violations: violations}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgNotBlank
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf(msgTooShort, fe.Param())
		}
		return fmt.Sprintf(msgGreaterOrEqual, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return msgTooLong
		}
		return fmt.Sprintf(msgLessOrEqual, fe.Param())
	default:
		return "This value is not valid."
	}
}
