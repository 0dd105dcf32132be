package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/bloglist/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every *ValidationError with [errors.Is].
	ErrValidation = errors.New("validation failed")
)

// Rule names reported in [models.FieldViolation.Rule].
const (
	RuleRequired  = "required"
	RuleMinLength = "minlength"
	RuleUnique    = "unique"
	RuleFormat    = "format"
)

// ValidationError lists every rule broken by a request. It is returned by
// validators and by services when the store rejects a value (a taken
// username) and is rendered as 400 with the field list.
type ValidationError struct {
	Fields []models.FieldViolation
}

// NewValidationError builds a ValidationError from the given violations.
func NewValidationError(violations ...models.FieldViolation) *ValidationError {
	return &ValidationError{Fields: violations}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}

	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}

	return ErrValidation.Error() + ": " + strings.Join(messages, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) add(field, rule, message string) {
	e.Fields = append(e.Fields, models.FieldViolation{Field: field, Rule: rule, Message: message})
}

// err returns nil when nothing was violated so callers can return it directly.
func (e *ValidationError) err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// MalformedID reports an identifier that the active backend cannot use.
func MalformedID(field string) *ValidationError {
	return NewValidationError(models.FieldViolation{
		Field:   field,
		Rule:    RuleFormat,
		Message: "malformed id",
	})
}

// MalformedBody reports a request body that could not be decoded.
func MalformedBody() *ValidationError {
	return NewValidationError(models.FieldViolation{
		Field:   "body",
		Rule:    RuleFormat,
		Message: "malformed JSON body",
	})
}

// UsernameTaken reports a username that already belongs to another user.
func UsernameTaken() *ValidationError {
	return NewValidationError(models.FieldViolation{
		Field:   FieldUsername,
		Rule:    RuleUnique,
		Message: "username must be unique",
	})
}
