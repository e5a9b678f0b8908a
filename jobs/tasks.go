package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/zena-portal/zena-portal/internal/coverage"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskCoverageExpireScan sweeps pending requests whose coverage day
	// has passed without a decision.
	TaskCoverageExpireScan = "coverage:expire_scan"
)

// ExpireScanPayload carries scheduling metadata for the expiry sweep.
type ExpireScanPayload struct {
	ScheduledFor time.Time `json:"scheduled_for"`
}

// NewExpireScanTask constructs an Asynq task for the expiry sweep.
func NewExpireScanTask(at time.Time) (*asynq.Task, error) {
	body, err := json.Marshal(ExpireScanPayload{ScheduledFor: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCoverageExpireScan, body, asynq.Queue(QueueDefault)), nil
}

// NewExpireScanHandler binds the expiry sweep to the coverage service.
func NewExpireScanHandler(svc *coverage.Service, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ExpireScanPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
		n, err := svc.MarkExpired(ctx)
		if err != nil {
			return err
		}
		logger.Info("coverage expiry sweep finished",
			slog.Int64("expired", n),
			slog.Time("scheduled_for", payload.ScheduledFor),
		)
		return nil
	}
}
