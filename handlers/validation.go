// validation.go - Maps binding failures to field-keyed error messages

package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report errors under the wire name (json/form tag) instead of the Go
	// struct field name, so clients can key error state by input field.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	}
}

// ValidationErrors converts a binding error into the envelope's errors shape:
// field name -> one or more human-readable messages. A malformed body that
// never reached field validation maps to a single "body" entry.
func ValidationErrors(err error) map[string][]string {
	out := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = []string{"The request body could not be parsed."}
		return out
	}

	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s does not match.", field)
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}
