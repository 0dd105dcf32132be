package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/validators"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. Any decoding failure is
// reported as a validation error on the body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		return validators.MalformedBody()
	}

	return nil
}
