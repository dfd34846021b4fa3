package service

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bcrypt ignores input past 72 bytes
const maxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	})
	return v
}

type validationError struct {
	key  string
	args []interface{}
}

func (e validationError) Error() string {
	return e.key
}

func (e validationError) Is(target error) bool {
	return target == ErrValidation
}

// Key i18n message key
func (e validationError) Key() string {
	return e.key
}

// Args message arguments
func (e validationError) Args() []interface{} {
	return e.args
}

func newValidationError(key string, args ...interface{}) error {
	return validationError{key: key, args: args}
}

// validateStruct runs the struct rules and reports only the first failing
// field, in declaration order.
func validateStruct(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return translateFieldError(fieldErrs[0])
}

func translateFieldError(fe validator.FieldError) error {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return newValidationError("error.validation_required", field)
	case "min":
		return newValidationError("error.validation_min_length", field, fe.Param())
	case "max":
		return newValidationError("error.validation_max_length", field, fe.Param())
	case "password":
		return newValidationError("error.validation_max_length", field, strconv.Itoa(maxPasswordBytes))
	case "email":
		return newValidationError("error.validation_email", field)
	case "excludes":
		return newValidationError("error.validation_excludes", field, fe.Param())
	case "eqfield":
		return newValidationError("error.passwords_mismatch")
	default:
		return newValidationError("error.validation_invalid", field)
	}
}

// ValidationMessage exposes the message key and arguments of a validation error.
func ValidationMessage(err error) (string, []interface{}, bool) {
	var ve validationError
	if errors.As(err, &ve) {
		return ve.key, ve.args, true
	}
	return "", nil, false
}
