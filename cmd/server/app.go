package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dominions-mapgen/internal/config"
	"github.com/KirkDiggler/dominions-mapgen/internal/pkg/logger"
	redisclient "github.com/KirkDiggler/dominions-mapgen/internal/redis"
	catalogrepo "github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog"
)

// app holds what every command needs: settings, a logger and the catalog
type app struct {
	cfg         *config.Config
	logger      *zap.Logger
	catalogRepo catalogrepo.Repository
	closers     []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: log}
	if err := a.openCatalog(ctx); err != nil {
		_ = log.Sync()
		return nil, err
	}

	return a, nil
}

func (a *app) openCatalog(ctx context.Context) error {
	switch a.cfg.CatalogBackend {
	case config.BackendRedis:
		client, err := redisclient.Connect(ctx, a.cfg.RedisAddr, a.cfg.RedisClusterAddrs, nil)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, client.Close)

		repo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: client})
		if err != nil {
			return err
		}
		a.catalogRepo = repo
		a.logger.Info("catalog backend ready",
			zap.String("backend", config.BackendRedis),
			zap.String("addr", a.cfg.RedisAddr),
			zap.Strings("cluster_addrs", a.cfg.RedisClusterAddrs))
	default:
		db, err := catalogrepo.OpenSQLite(a.cfg.SQLitePath)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, db.Close)

		repo, err := catalogrepo.NewSQLite(&catalogrepo.SQLiteConfig{DB: db})
		if err != nil {
			return err
		}
		a.catalogRepo = repo
		a.logger.Info("catalog backend ready",
			zap.String("backend", config.BackendSQLite),
			zap.String("path", a.cfg.SQLitePath))
	}
	return nil
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("failed to close resource", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}
