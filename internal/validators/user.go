package validators

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/bloglist/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// MinCredentialLength is the minimal length of usernames and passwords.
const MinCredentialLength = 3

// UserValidator validates registration and login requests. Lengths are
// counted in characters, not bytes.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterUserRequest:
		return v.validateRegistration(value, fields...)
	case *models.RegisterUserRequest:
		return v.validateRegistration(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegistration(request models.RegisterUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUsername:
			checkCredential(verr, FieldUsername, request.Username)
		case FieldPassword:
			checkCredential(verr, FieldPassword, request.Password)
		default:
			return ErrUnknownField
		}
	}

	return verr.err()
}

func (v *UserValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				verr.add(FieldUsername, RuleRequired, "username is required")
			}
		case FieldPassword:
			if request.Password == "" {
				verr.add(FieldPassword, RuleRequired, "password is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.err()
}

func checkCredential(verr *ValidationError, field, value string) {
	switch {
	case value == "":
		verr.add(field, RuleRequired, field+" is required")
	case utf8.RuneCountInString(value) < MinCredentialLength:
		verr.add(field, RuleMinLength, fmt.Sprintf("%s must be at least %d characters long", field, MinCredentialLength))
	}
}
