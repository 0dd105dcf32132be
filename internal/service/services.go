package service

import (
	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	BlogService    BlogService
	StatsService   StatsService
	AppInfoService AppInfoService
}

// NewServices builds every service over storages. User, blog and login
// inputs pass through the validation decorators before reaching the store.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthValidationService().Wrap(NewAuthService(storages.UserRepository, cfg.App, logger))
	userService := NewUserValidationService().Wrap(NewUserService(storages.UserRepository, cfg.App, logger))
	blogService := NewBlogValidationService(storages.IDFormat).Wrap(NewBlogService(storages.BlogRepository, logger))

	return &Services{
		AuthService:    authService,
		UserService:    userService,
		BlogService:    blogService,
		StatsService:   NewStatsService(storages.BlogRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
