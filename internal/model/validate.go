package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ownerRegex = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?$`)
	repoRegex  = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// validate is shared by all constructors in this package.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("gh_owner", func(fl validator.FieldLevel) bool {
		return ownerRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("gh_repo", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return name != "." && name != ".." && repoRegex.MatchString(name)
	})

	return v
}

// ErrInvalid is matched by every ValidationError.
var ErrInvalid = errors.New("invalid value")

// ValidationError reports which fields of an entity were rejected.
type ValidationError struct {
	Entity string
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// check validates s and converts validator failures into a ValidationError.
func check(entity string, s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %s: %w", entity, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		fields = append(fields, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}

	return &ValidationError{Entity: entity, Fields: fields}
}
