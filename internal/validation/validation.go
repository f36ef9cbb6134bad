// Package validation wraps go-playground/validator with error messages that
// name fields the way users write them in configuration files.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var instance = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Prefer the configuration name in error messages.
		for _, tag := range []string{"name", "yaml", "hcl"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
})

// Error lists every failed constraint of a struct.
type Error struct {
	Problems []string
}

// Error implements the error interface for Error.
func (e *Error) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &Error{}
	for _, fe := range fieldErrs {
		// Drop the root struct name from the namespace.
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		out.Problems = append(out.Problems, describe(path, fe))
	}
	return out
}

func describe(path string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", path)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s], got %q", path, fe.Param(), fmt.Sprint(fe.Value()))
	case "min":
		switch fe.Kind() {
		case reflect.Slice, reflect.Map, reflect.Array:
			return fmt.Sprintf("%q must contain at least %s items", path, fe.Param())
		}
		return fmt.Sprintf("%q must be at least %s", path, fe.Param())
	default:
		return fmt.Sprintf("%q failed %q validation", path, fe.ActualTag())
	}
}
