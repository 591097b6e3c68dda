package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their json names so error maps line up with the
	// request payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "Reserved", "Ongoing", "Completed", "Cancelled":
			return true
		}
		return false
	})

	_ = v.RegisterValidation("vehicle_status", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "Available", "With Driver Only", "Maintenance":
			return true
		}
		return false
	})

	_ = v.RegisterValidation("transmission", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "AT" || s == "MT"
	})

	return v
}

// ValidateStruct validates a struct against its validator tags and returns
// a *ValidationError with field-level messages when it fails.
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			return NewValidationError(errs)
		}
		return err
	}
	return nil
}
