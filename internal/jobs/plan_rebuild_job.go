package jobs

import (
	"context"
	"errors"
	"log/slog"

	"planner/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PlanRebuildJob periodically distributes unplanned orders over the
// registered riders. Each run first checks whether any order is waiting in
// Created status; a rebuild is only triggered when there is new work, so
// an idle system does not mint identical plan snapshots every tick.
type PlanRebuildJob struct {
	handler    commands.BuildPlanCommandHandler
	uowFactory commands.OrderUoWFactory
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPlanRebuildJob creates a job that rebuilds the plan on the given cron
// schedule (with seconds field, e.g. "*/5 * * * * *").
func NewPlanRebuildJob(
	handler commands.BuildPlanCommandHandler,
	uowFactory commands.OrderUoWFactory,
	schedule string,
	logger *slog.Logger,
) *PlanRebuildJob {
	return &PlanRebuildJob{
		handler:    handler,
		uowFactory: uowFactory,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "plan_rebuild_job"),
	}
}

// Start begins the plan rebuild job on its configured schedule.
func (j *PlanRebuildJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Plan rebuild job started", "schedule", j.schedule)
	return nil
}

// Stop stops the plan rebuild job.
func (j *PlanRebuildJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Plan rebuild job stopped")
}

func (j *PlanRebuildJob) run() {
	ctx := context.Background()

	// Read outside a transaction: the repository falls back to the main
	// connection when no transaction is active.
	pending, err := j.uowFactory.Create().OrderRepository().HasCreated(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Plan rebuild job failed to check pending orders", "error", err)
		return
	}
	if !pending {
		return
	}

	cmd := commands.NewBuildPlanCommand()
	if err := j.handler.Handle(ctx, cmd); err != nil {
		// Only log errors that are not expected business scenarios
		if !errors.Is(err, commands.ErrNoRidersFound) {
			j.logger.ErrorContext(ctx, "Plan rebuild job failed", "error", err)
		}
	}
}
