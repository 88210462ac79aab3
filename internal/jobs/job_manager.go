package jobs

import (
	"fmt"
	"log/slog"

	"planner/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	planRebuildJob *PlanRebuildJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	buildPlanHandler commands.BuildPlanCommandHandler,
	uowFactory commands.OrderUoWFactory,
	rebuildSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		planRebuildJob: NewPlanRebuildJob(buildPlanHandler, uowFactory, rebuildSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.planRebuildJob.Start(); err != nil {
		return fmt.Errorf("failed to start plan rebuild job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.planRebuildJob.Stop()
}
