// Copyright (c) 2025 Zampapp. All Rights Reserved.
// This is licensed software from Zampapp, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zampapp/challenge-engine/pkg/access"
	"github.com/zampapp/challenge-engine/pkg/catalog"
	"github.com/zampapp/challenge-engine/pkg/metrics"
	"github.com/zampapp/challenge-engine/pkg/snapshot"
	"github.com/zampapp/challenge-engine/pkg/timewindow"
)

// Run starts the application and blocks until a shutdown signal is
// received. The refresh loop runs on its own ticker; each pass fetches
// a fresh snapshot, caches it, and re-evaluates the visible catalog.
func (a *App) Run(ctx context.Context) error {
	if err := a.metricsServer.Start(ctx); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.Info("application started successfully")

	ticker := time.NewTicker(a.refreshInterval())
	defer ticker.Stop()

	if err := a.refresh(ctx); err != nil {
		logrus.Errorf("initial refresh failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			logrus.Info("shutdown signal received")
			return a.Shutdown(context.Background())
		case <-ticker.C:
			if err := a.refresh(ctx); err != nil {
				logrus.Errorf("refresh failed: %v", err)
			}
		}
	}
}

// refresh fetches profile, challenges and attempt statuses, stores the
// snapshot, and recomputes the per-tab visible sets.
func (a *App) refresh(ctx context.Context) error {
	start := time.Now()
	now := start

	user, err := a.client.GetProfile(ctx, now)
	if err != nil {
		metrics.RefreshesTotal.WithLabelValues("error").Inc()
		return err
	}

	challenges, err := a.client.ListChallenges(ctx)
	if err != nil {
		metrics.RefreshesTotal.WithLabelValues("error").Inc()
		return err
	}

	snap := snapshot.New(now)
	snap.User = user
	snap.Challenges = challenges

	// Attempt statuses only matter for challenges the user can actually
	// open and that are still running.
	for _, c := range challenges {
		verdict := access.Evaluate(c, user)
		metrics.VerdictsTotal.WithLabelValues(string(verdict.Reason)).Inc()

		if !verdict.CanAccess {
			logrus.Debugf("challenge %s locked for user %s: %s (%s left)",
				c.ID, a.userID, verdict.DenialMessage(a.msgs),
				timewindow.FormatRemaining(c.EndDate, now, a.labels))
			continue
		}
		if !timewindow.Active(c, now) {
			continue
		}

		status, err := a.client.GetAttemptStatus(ctx, c.ID)
		if err != nil {
			logrus.Warnf("attempt status for challenge %s unavailable: %v", c.ID, err)
			continue
		}
		snap.Attempts[c.ID] = status
	}

	if err := a.store.Put(ctx, a.userID, snap); err != nil {
		metrics.RefreshesTotal.WithLabelValues("error").Inc()
		return err
	}

	for _, tab := range a.catalogCfg.EnabledTabs() {
		visible := catalog.Filter(challenges, tab, user, now)
		metrics.VisibleChallenges.WithLabelValues(string(tab)).Set(float64(len(visible)))
	}

	metrics.RefreshesTotal.WithLabelValues("ok").Inc()
	metrics.RefreshDuration.Observe(time.Since(start).Seconds())

	logrus.Infof("snapshot refreshed: %d challenges, %d attempt statuses (took %v)",
		len(challenges), len(snap.Attempts), time.Since(start))
	return nil
}

// Shutdown gracefully shuts down all application components in reverse
// dependency order: servers first, then external connections.
func (a *App) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down application...")

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.metricsServer.Shutdown(ctx); err != nil {
		logrus.Errorf("metrics server shutdown error: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			logrus.Errorf("Redis close error: %v", err)
		}
	}

	logrus.Info("application shutdown complete")
	return nil
}
