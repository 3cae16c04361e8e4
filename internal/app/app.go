package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"advocate_site/internal/config"
	"advocate_site/internal/content"
	"advocate_site/internal/disclaimer"
	"advocate_site/internal/schedule"
	"advocate_site/internal/services"
)

// LoadSite returns the embedded site content, or the YAML file at path when set
func LoadSite(path string) (*content.Site, error) {
	if path == "" {
		return content.Default()
	}
	return content.LoadFile(path)
}

// NewDesk builds the consultation desk for the site's zones
func NewDesk(cfg *config.Config, site *content.Site) (*schedule.Desk, error) {
	return schedule.NewDesk(cfg.HomeTimezone, site.GlobalDesk.Zones, cfg.ConsultRule)
}

// TracksVisitors reports whether the configured store keys acknowledgements by
// visitor id. Cookie-only mode needs no visitor cookie.
func TracksVisitors(cfg *config.Config) bool {
	return cfg.DisclaimerStore != config.StoreCookie
}

// OpenStore connects the configured acknowledgement store.
// The returned func releases its connections and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (disclaimer.Store, func(), error) {
	noop := func() {}

	switch cfg.DisclaimerStore {
	case config.StoreCookie:
		return disclaimer.NopStore{}, noop, nil

	case config.StoreMemory:
		return disclaimer.NewMemoryStore(), noop, nil

	case config.StoreRedis:
		cache, err := services.NewRedisCache(ctx, cfg.RedisURL, log)
		if err != nil {
			return nil, noop, fmt.Errorf("connect redis: %w", err)
		}
		closeFn := func() {
			if err := cache.Close(); err != nil {
				log.Warn("Failed to close redis", zap.Error(err))
			}
		}
		return disclaimer.NewRedisStore(cache, cfg.DisclaimerRetention), closeFn, nil

	case config.StorePostgres:
		db, err := services.InitDB(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, noop, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		if err := services.AutoMigrate(db, log); err != nil {
			closeFn()
			return nil, noop, fmt.Errorf("migrate: %w", err)
		}
		return disclaimer.NewGormStore(db), closeFn, nil
	}

	return nil, noop, fmt.Errorf("unknown disclaimer store %q", cfg.DisclaimerStore)
}
