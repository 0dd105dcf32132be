package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/service"
	"github.com/MKhiriev/bloglist/internal/utils"
	"github.com/MKhiriev/bloglist/internal/validators"
	"github.com/MKhiriev/bloglist/models"
)

// errorStatus pairs a sentinel with the status it is rendered as. The
// sentinel's message becomes the public "error" text.
type errorStatus struct {
	target error
	status int
}

var errorStatusTable = []errorStatus{
	{service.ErrTokenInvalid, http.StatusUnauthorized},
	{service.ErrUserNotFound, http.StatusUnauthorized},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},

	{service.ErrBlogNotFound, http.StatusNotFound},
	{ErrUnknownEndpoint, http.StatusNotFound},
}

// statusFromError resolves the HTTP status and public body for err.
// Validation failures carry their field list; unknown errors become 500
// without leaking internals.
func statusFromError(err error) (int, models.ErrorResponse) {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, models.ErrorResponse{Error: verr.Error(), Fields: verr.Fields}
	}

	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			return e.status, models.ErrorResponse{Error: e.target.Error()}
		}
	}

	return http.StatusInternalServerError, models.ErrorResponse{Error: ErrInternal.Error()}
}

// writeError renders err as JSON. Server-side failures are logged here;
// client errors were already logged where they were detected.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}

func (h *Handler) unknownEndpoint(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrUnknownEndpoint)
}
