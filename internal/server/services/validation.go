package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrijs2005/sampleapp/internal/common"
	"github.com/go-playground/validator/v10"
)

var emailFormat = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d\-.]+\.[a-z]+$`)

// SignupInput carries the registration form. The plaintext password lives
// only as long as the request.
type SignupInput struct {
	Name                 string `json:"name" validate:"required,max=50"`
	Email                string `json:"email" validate:"required,email_format"`
	Password             string `json:"password" validate:"required,min=6,max=40"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

type passwordInput struct {
	Password             string `json:"password" validate:"required,min=6,max=40"`
	PasswordConfirmation string `json:"password_confirmation" validate:"eqfield=Password"`
}

// ValidationError lists the rejected fields with a message for each.
// errors.Is(err, common.ErrorValidation) holds for it.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", common.ErrorValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return common.ErrorValidation }

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	if err := v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailFormat.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

func validateStruct(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}

	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		if _, seen := out.Fields[fe.Field()]; seen {
			continue
		}
		out.Fields[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "can't be blank"
	case "min":
		return fmt.Sprintf("is too short (minimum is %s characters)", fe.Param())
	case "max":
		return fmt.Sprintf("is too long (maximum is %s characters)", fe.Param())
	case "email_format":
		return "is invalid"
	case "eqfield":
		return "doesn't match password"
	default:
		return "is invalid"
	}
}
