package healthcheck

import (
	"context"

	"github.com/mileusna/crontab"
	"ravelpix.com/photo-download-gateway/app/infrastructure/cache"
	"ravelpix.com/photo-download-gateway/app/infrastructure/objectstore"
	"ravelpix.com/photo-download-gateway/app/utils/logger"
	"ravelpix.com/photo-download-gateway/config/environment_variables"
)

type HealthcheckCrontabService struct {
	Store objectstore.Store
	Cache cache.CacheService
}

func NewService(store objectstore.Store, cacheService cache.CacheService) *HealthcheckCrontabService {
	return &HealthcheckCrontabService{
		Store: store,
		Cache: cacheService,
	}
}

func (hs *HealthcheckCrontabService) Start(ctx context.Context, ctab *crontab.Crontab) {
	hs.CheckBackends(ctx)
	// Check every 2 minutes and pick up environment changes.
	ctab.AddJob("*/2 * * * *", func() {
		hs.CheckBackends(ctx)
		environment_variables.EnvironmentVariables.LoadFromEnv()
	})
}

func (hs *HealthcheckCrontabService) CheckBackends(ctx context.Context) {
	if err := hs.Store.HealthCheck(ctx); err != nil {
		logger.GetLogger().Warn("healthcheck: object store: " + err.Error())
	}
	if err := hs.Cache.HealthCheck(ctx); err != nil {
		logger.GetLogger().Warn("healthcheck: cache: " + err.Error())
	}
}
