package worker

import (
	"context"
	"time"

	"github.com/shopnobd/backoffice/internal/logger"
	"go.uber.org/zap"
)

// OrderService provides the snapshot refresh the worker drives.
type OrderService interface {
	RefreshSnapshot(ctx context.Context) error
}

// SnapshotRefresher periodically refetches the order snapshot so that local
// filtering works over reasonably fresh data between explicit list requests.
type SnapshotRefresher struct {
	svc      OrderService
	interval time.Duration
}

// NewSnapshotRefresher creates new SnapshotRefresher instance.
func NewSnapshotRefresher(svc OrderService, interval time.Duration) *SnapshotRefresher {
	return &SnapshotRefresher{svc: svc, interval: interval}
}

// Run refreshes the snapshot on every tick until the context is done.
func (sr *SnapshotRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(sr.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("snapshot refresher is done")
			return
		case <-ticker.C:
			if err := sr.svc.RefreshSnapshot(ctx); err != nil {
				logger.Log.Error("refresh order snapshot", zap.Error(err))
			}
		}
	}
}
