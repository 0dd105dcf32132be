package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
)

// http.NewHandler only stores the services pointer, so nil services are
// enough for construction tests.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Server
		wantErr error
	}{
		{name: "http address set", cfg: config.Server{HTTPAddress: ":3003"}},
		{name: "no address", cfg: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(nil, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, h)
			assert.NotNil(t, h.HTTP)
			assert.NotNil(t, h.HTTP.Init())
		})
	}
}
