package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks struct fields and returns a field-keyed map of failed
// rules, or nil when the value is valid.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errs[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return errs
}

// FromBindingError converts a gin binding error into the field-keyed errors
// map used by 422 responses.
func FromBindingError(err error) map[string]string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[strings.ToLower(fe.Field())] = fe.Tag()
		}
		return out
	}
	return map[string]string{"request": "malformed request body"}
}
