package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

// Custom tags for the tracker's closed vocabularies
const (
	tagJobStatus     = "jobstatus"
	tagContactStatus = "contactstatus"
	tagContactType   = "contacttype"
)

// Validator checks request DTOs against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	defaultValidator *Validator
	validatorOnce    sync.Once
)

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name so clients can map errors onto inputs
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})

	enums := map[string]func(string) bool{
		tagJobStatus:     func(s string) bool { return domain.JobStatus(s).Valid() },
		tagContactStatus: func(s string) bool { return domain.ContactStatus(s).Valid() },
		tagContactType:   func(s string) bool { return domain.ContactType(s).Valid() },
	}
	for tag, valid := range enums {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
	}

	return &Validator{validate: v}
}

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		defaultValidator = newValidator()
	})
	return defaultValidator
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validation errors into messages keyed by JSON field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": ValidationMsgInvalidFormat}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = validationMessage(e)
	}
	return fields
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return ValidationMsgRequired
	case "max":
		return fmt.Sprintf(ValidationMsgMax, e.Param())
	case "min":
		return fmt.Sprintf(ValidationMsgMin, e.Param())
	case "url":
		return ValidationMsgURL
	case "excluded_with":
		return ValidationMsgExcludedWith
	case tagJobStatus:
		return ValidationMsgJobStatus
	case tagContactStatus:
		return ValidationMsgContactStatus
	case tagContactType:
		return ValidationMsgContactType
	default:
		return ValidationMsgInvalidValue
	}
}
