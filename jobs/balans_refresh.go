package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/hisobchi/hisobchi/internal/balans"
	"github.com/hisobchi/hisobchi/internal/observability"
)

// BalansRefreshJob recomputes the balance report and writes the Redis
// snapshot served on the snapshot endpoint. The live report endpoint does not
// depend on this job running.
type BalansRefreshJob struct {
	Service   *balans.Service
	Snapshots *balans.SnapshotStore
	Logger    *slog.Logger
	Metrics   *observability.Metrics
	clock     func() time.Time
}

// NewBalansRefreshJob wires dependencies for the refresh handler.
func NewBalansRefreshJob(service *balans.Service, snapshots *balans.SnapshotStore, logger *slog.Logger, metrics *observability.Metrics) *BalansRefreshJob {
	return &BalansRefreshJob{
		Service:   service,
		Snapshots: snapshots,
		Logger:    logger,
		Metrics:   metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes TaskBalansRefresh tasks.
func (j *BalansRefreshJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Service == nil || j.Snapshots == nil {
		return errors.New("balans refresh: handler not configured")
	}
	var payload BalansRefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	logger := j.Logger
	if payload.Reason != "" {
		logger = logger.With(slog.String("reason", payload.Reason))
	}

	summary, err := j.Service.Summary(ctx)
	if err != nil {
		logger.Error("compose balance snapshot", slog.Any("error", err))
		j.Metrics.ObserveSnapshotRefresh("error")
		return err
	}

	snap := balans.Snapshot{Summary: summary, CapturedAt: j.clock()}
	if err := j.Snapshots.Save(ctx, snap); err != nil {
		logger.Error("save balance snapshot", slog.Any("error", err))
		j.Metrics.ObserveSnapshotRefresh("error")
		return err
	}

	j.Metrics.ObserveSnapshotRefresh("ok")
	logger.Info("balance snapshot refreshed",
		slog.Float64("net_income", summary.NetIncome),
		slog.Time("captured_at", snap.CapturedAt))
	return nil
}
