package app

import (
	"fmt"

	"github.com/kapu/hf-wrapped-go/internal/api"
	"github.com/kapu/hf-wrapped-go/internal/config"
	"github.com/kapu/hf-wrapped-go/internal/service/cache"
	"github.com/kapu/hf-wrapped-go/internal/service/dataset"
	"github.com/kapu/hf-wrapped-go/internal/service/hub"
	"github.com/kapu/hf-wrapped-go/internal/service/wrapped"
	"go.uber.org/zap"
)

// Container bundles the assembled services. Heavy-weight initialization
// (Redis, HTTP clients) happens in Build so the entrypoint stays focused on
// lifecycle.
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Generator *wrapped.Generator
	Limiter   *api.RateLimiter
	Cache     *cache.CacheService
	Store     *dataset.Store
}

// Build assembles the full dependency graph. The Redis hot cache is
// optional: an empty host leaves the generator running against the dataset
// store alone.
func Build(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	hubClient := hub.NewClient(cfg.Hub.BaseURL, cfg.Hub.Timeout, logger)
	hubSvc := hub.NewService(hubClient, logger)
	store := dataset.NewStore(cfg.Dataset, cfg.Hub.BaseURL, cfg.Hub.Timeout, logger)

	var cacheSvc *cache.CacheService
	var hotCache wrapped.HotCache
	if cfg.Redis.Host != "" {
		svc, err := cache.NewCacheService(cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache service: %w", err)
		}
		cacheSvc = svc
		hotCache = svc
	} else {
		logger.Info("Redis not configured, hot cache disabled")
	}

	generator := wrapped.NewGenerator(hubSvc, store, hotCache, logger)

	var limiter *api.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = api.NewRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
		logger.Info("Rate limiting enabled",
			zap.Duration("window", cfg.RateLimit.Window),
			zap.Int("max_requests", cfg.RateLimit.MaxRequests),
		)
	}

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Generator: generator,
		Limiter:   limiter,
		Cache:     cacheSvc,
		Store:     store,
	}, nil
}

// Close releases held connections.
func (c *Container) Close() {
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
}
