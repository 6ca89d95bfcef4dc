package service

import (
	"context"

	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/models"
)

// appInfoService reports the running build. A version set in configuration
// takes precedence over the one linked into the binary.
type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = build.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetBuildInfo returns the effective version with the build date and commit.
func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(s.appVersion, s.build.BuildDate(), s.build.BuildCommit())
}
