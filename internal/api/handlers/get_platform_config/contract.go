package get_platform_config

import (
	"context"

	"github.com/m04kA/SMC-LavaderoService/internal/service/billing/models"
)

type BillingService interface {
	GetPlatformConfig(ctx context.Context) (*models.PlatformConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
