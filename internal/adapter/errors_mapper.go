package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/bloglist/models"
)

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: status, kind: statusKind(status)}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Fields = body.Fields
	} else {
		apiErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}

	return apiErr
}

func statusKind(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return ErrBadRequest
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}
