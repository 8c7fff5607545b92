package jobs

import (
	"context"
	"log/slog"

	"posdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSessionCleanupSchedule sweeps stale sessions once an hour.
const DefaultSessionCleanupSchedule = "0 * * * *"

// SessionCleanupJob periodically deletes expired and deactivated courier
// sessions so the session table does not grow without bound.
type SessionCleanupJob struct {
	handler  commands.CleanupSessionsCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a cleanup job on the given cron schedule.
// An empty schedule falls back to DefaultSessionCleanupSchedule.
func NewSessionCleanupJob(
	handler commands.CleanupSessionsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *SessionCleanupJob {
	if schedule == "" {
		schedule = DefaultSessionCleanupSchedule
	}

	return &SessionCleanupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the periodic session sweep.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupSessionsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed to build command", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Session cleanup job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Session cleanup removed stale sessions", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
