package validators

import (
	"context"

	"github.com/MKhiriev/bloglist/models"
)

const (
	FieldTitle = "title"
	FieldURL   = "url"
)

// BlogValidator checks the persisted-blog invariant: a non-empty title and url.
type BlogValidator struct {
}

func NewBlogValidator() Validator {
	return &BlogValidator{}
}

func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Blog:
		return v.validate(value.Title, value.URL, fields...)
	case *models.Blog:
		return v.validate(value.Title, value.URL, fields...)

	case models.CreateBlogRequest:
		return v.validate(value.Title, value.URL, fields...)
	case *models.CreateBlogRequest:
		return v.validate(value.Title, value.URL, fields...)

	case models.UpdateBlogRequest:
		return v.validate(value.Title, value.URL, fields...)
	case *models.UpdateBlogRequest:
		return v.validate(value.Title, value.URL, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validate(title, url string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldURL}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if title == "" {
				verr.add(FieldTitle, RuleRequired, "title is required")
			}
		case FieldURL:
			if url == "" {
				verr.add(FieldURL, RuleRequired, "url is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.err()
}
