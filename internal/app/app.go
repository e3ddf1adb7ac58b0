// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/zampapp/challenge-engine/internal/config"
	"github.com/zampapp/challenge-engine/internal/server"
	"github.com/zampapp/challenge-engine/pkg/access"
	"github.com/zampapp/challenge-engine/pkg/backend"
	"github.com/zampapp/challenge-engine/pkg/catalog"
	"github.com/zampapp/challenge-engine/pkg/snapshot"
	"github.com/zampapp/challenge-engine/pkg/timewindow"
)

const metricsEndpoint = "/metrics"

// App holds all application dependencies and manages the application
// lifecycle: the backend client, the snapshot store, the catalog
// configuration, and the metrics server.
type App struct {
	cfg           *config.Config
	catalogCfg    *catalog.Config
	client        *backend.Client
	store         *snapshot.Store
	redisClient   *redis.Client
	metricsServer *server.MetricsServer

	userID string
	labels timewindow.Labels
	msgs   access.Messages
}

// New creates and initializes a new application instance. Components
// come up in dependency order: backend session, Redis, catalog config,
// metrics server.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg}

	// Backend session
	opts := []backend.Option{
		backend.WithTimeout(cfg.APITimeout),
		backend.WithMaxRetries(cfg.APIMaxRetries),
	}
	if cfg.APIToken != "" {
		opts = append(opts, backend.WithToken(cfg.APIToken))
	}
	a.client = backend.NewClient(cfg.APIBaseURL, opts...)

	if cfg.APIToken == "" {
		resp, err := a.client.Login(ctx, cfg.SessionEmail, cfg.SessionPassword)
		if err != nil {
			return nil, fmt.Errorf("establishing backend session: %w", err)
		}
		if resp.User != nil {
			a.userID = resp.User.ID
		}
		logrus.Infof("logged in to backend as %s", cfg.SessionEmail)
	}

	if a.userID == "" {
		user, err := a.client.GetProfile(ctx, time.Now())
		if err != nil {
			return nil, fmt.Errorf("resolving session user: %w", err)
		}
		a.userID = user.ID
	}

	// Redis
	redisClient, err := snapshot.InitRedisClient(ctx, cfg.RedisAddr(), cfg.RedisPassword, cfg.RedisMaxRetries)
	if err != nil {
		return nil, fmt.Errorf("initializing Redis: %w", err)
	}
	a.redisClient = redisClient
	a.store = snapshot.NewStore(redisClient)

	// Catalog configuration
	catalogCfg, err := catalog.LoadConfig(cfg.CatalogConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog config: %w", err)
	}
	a.catalogCfg = catalogCfg

	a.labels = timewindow.Italian
	a.msgs = access.Italian
	if catalogCfg.Locale == "en" {
		a.labels = timewindow.English
		a.msgs = access.English
	}

	// Metrics server
	a.metricsServer = server.NewMetricsServer(cfg.MetricsPort, metricsEndpoint)
	if err := a.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("setting up metrics server: %w", err)
	}

	logrus.Infof("application initialized: user=%s tabs=%v locale=%s",
		a.userID, catalogCfg.EnabledTabs(), catalogCfg.Locale)

	return a, nil
}

// refreshInterval returns the configured snapshot refresh cadence.
func (a *App) refreshInterval() time.Duration {
	if d := time.Duration(a.catalogCfg.RefreshInterval); d > 0 {
		return d
	}
	return time.Minute
}
