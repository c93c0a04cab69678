package service

import (
	"fmt"

	"github.com/MKhiriev/go-youfone/internal/adapter"
	"github.com/MKhiriev/go-youfone/internal/logger"
	"github.com/MKhiriev/go-youfone/models"
)

type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
	RefreshJob     RefreshJob
}

func NewServices(youfoneAdapter adapter.YoufoneAdapter, credentials models.Credentials, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoSvc, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	accountSvc := NewAccountService(youfoneAdapter, credentials, logger)

	return &Services{
		AccountService: accountSvc,
		AppInfoService: appInfoSvc,
		RefreshJob:     NewRefreshJob(accountSvc),
	}, nil
}
