package validation

import (
	"math"

	"github.com/blaisecz/better-rest/internal/domain"
	"github.com/blaisecz/better-rest/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// HH:MM wake times
	validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseClock(fl.Field().String())
		return err == nil
	})

	// Stepper increments of the sleep amount
	validate.RegisterValidation("quarter", func(fl validator.FieldLevel) bool {
		steps := fl.Field().Float() / domain.SleepHoursStep
		return steps == math.Trunc(steps)
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "clock":
		return "must be a time of day in HH:MM format"
	case "quarter":
		return "must be a multiple of 0.25"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
