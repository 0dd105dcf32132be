package service

import (
	"context"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when no version is
// configured; config defaults normally fill it in.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", cfg.Version).Msg("serving application version")
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
