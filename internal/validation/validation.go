// Package validation rejects incomplete submissions before any mutation runs.
//
// Requests declare their rules with `validate` struct tags and a `label` tag
// used in the message. Fields are checked in declaration order and only the
// first failure is reported.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"blogly/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validator wraps a configured validator.Validate.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that knows the notblank rule and reports fields by
// their json name.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank fails on strings that are empty after trimming whitespace.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and returns the first failing field as a ValidationError.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperror.NewBadRequest("invalid submission")
	}
	first := fieldErrs[0]
	return apperror.NewValidation(first.Field(), message(s, first))
}

func message(s any, fe validator.FieldError) string {
	label := fe.Field()
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if sf, ok := t.FieldByName(fe.StructField()); ok {
		if l := sf.Tag.Get("label"); l != "" {
			label = l
		}
	}
	switch fe.Tag() {
	case "notblank", "required":
		return label + " is required"
	case "gt", "gte", "min":
		return label + " must be at least " + fe.Param()
	default:
		return label + " is invalid"
	}
}
