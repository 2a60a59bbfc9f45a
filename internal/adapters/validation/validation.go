package validation

import (
	"strconv"
	"strings"
	"time"

	apperrors "github.com/lorrc/usage-dashboard/internal/core/errors"
)

// Validator collects field problems. Validators derived with Field share the
// same error set and prefix every field name they report.
type Validator struct {
	errors *apperrors.ValidationErrors
	prefix string
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{
		errors: apperrors.NewValidationErrors(),
	}
}

// Field returns a validator that reports problems under prefix, e.g. "[3]".
func (v *Validator) Field(prefix string) *Validator {
	return &Validator{errors: v.errors, prefix: v.name(prefix)}
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return v.errors.HasErrors()
}

// Errors returns the validation errors
func (v *Validator) Errors() *apperrors.ValidationErrors {
	return v.errors
}

// Err returns the collected errors, or nil when there are none.
func (v *Validator) Err() error {
	if !v.errors.HasErrors() {
		return nil
	}
	return v.errors
}

// Add records a problem for field.
func (v *Validator) Add(field, message string) *Validator {
	v.errors.Add(v.name(field), message)
	return v
}

// Required validates that a string is not empty
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "This field is required")
	}
	return v
}

// MaxLength validates maximum string length
func (v *Validator) MaxLength(field, value string, max int) *Validator {
	if len(value) > max {
		v.Add(field, "Must be at most "+strconv.Itoa(max)+" characters")
	}
	return v
}

// NonNegative validates that an integer is zero or more
func (v *Validator) NonNegative(field string, value int64) *Validator {
	if value < 0 {
		v.Add(field, "Must not be negative")
	}
	return v
}

// NotAfter validates that from does not come after to
func (v *Validator) NotAfter(field string, from, to time.Time) *Validator {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		v.Add(field, "Start must not be after end")
	}
	return v
}

// OneOf validates value is one of the allowed values
func (v *Validator) OneOf(field, value string, allowed []string) *Validator {
	if value == "" {
		return v // Empty is handled by Required
	}

	for _, a := range allowed {
		if value == a {
			return v
		}
	}

	v.Add(field, "Must be one of: "+strings.Join(allowed, ", "))
	return v
}

// Custom adds a custom validation
func (v *Validator) Custom(field string, valid bool, message string) *Validator {
	if !valid {
		v.Add(field, message)
	}
	return v
}

func (v *Validator) name(field string) string {
	switch {
	case v.prefix == "":
		return field
	case field == "":
		return v.prefix
	case strings.HasPrefix(field, "["):
		return v.prefix + field
	default:
		return v.prefix + "." + field
	}
}
