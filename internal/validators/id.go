package validators

import (
	"context"
)

// FieldID names the path identifier in violations.
const FieldID = "id"

// IDFormat reports whether an identifier is well-formed for the active
// storage backend.
type IDFormat interface {
	Valid(id string) bool
}

// IDValidator rejects malformed identifiers before they reach the store.
type IDValidator struct {
	ids IDFormat
}

func NewIDValidator(ids IDFormat) Validator {
	return &IDValidator{ids: ids}
}

func (v *IDValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	id, ok := obj.(string)
	if !ok {
		return ErrUnsupportedType
	}

	field := FieldID
	if len(fields) > 0 {
		field = fields[0]
	}

	if !v.ids.Valid(id) {
		return MalformedID(field)
	}

	return nil
}
