package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"fittracker/fitness-app/internal/domain"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a local precondition failure, raised before any
// remote call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("loosemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("uf", func(fl validator.FieldLevel) bool {
		return domain.IsUF(fl.Field().String())
	})
	_ = v.RegisterValidation("days", func(fl validator.FieldLevel) bool {
		days, ok := fl.Field().Interface().(domain.DaySet)
		return ok && !days.Empty()
	})
	return v
}

var fieldMessages = map[string]string{
	"required":  "is required",
	"loosemail": "is not a valid email",
	"min":       fmt.Sprintf("must have at least %d characters", minPasswordLength),
	"uf":        "is not a valid UF",
	"days":      "must include at least one weekday",
	"gt":        "is required",
}

// check runs struct validation and converts the first failure into a
// ValidationError.
func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	msg, ok := fieldMessages[fe.Tag()]
	if !ok {
		msg = "is invalid"
	}
	return &ValidationError{Field: strings.ToLower(fe.Field()), Message: msg}
}
