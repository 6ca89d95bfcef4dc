package service

import (
	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/crypto"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/notifier"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/MKhiriev/go-blog-platform/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(
	repositories *store.Repositories,
	notifier notifier.Notifier,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher(cfg.App.PasswordHashCost)
	generator := crypto.NewConfirmationGenerator(cfg.App.ConfirmationTTL, nil)
	ids := utils.NewUUIDGenerator()
	tokenService := NewTokenService(cfg.App, logger)

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, hasher, generator, notifier, tokenService, ids, logger),
		TokenService:   tokenService,
		UserService:    NewUserService(repositories.UserRepository, hasher, generator, ids, logger),
		AppInfoService: appInfoService,
	}, nil
}
