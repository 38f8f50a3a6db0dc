package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"zonedelivery/internal/core/application/usecases/commands"
)

// DefaultRunTimeout bounds a single auto-assignment pass.
const DefaultRunTimeout = 30 * time.Second

type AutoAssignCouriersHandler interface {
	Handle(ctx context.Context, cmd commands.AutoAssignCouriersCommand) (int, error)
}

// CourierAssignmentJob places unassigned couriers into the active zone that
// contains their last known position. Couriers outside every active zone stay
// unassigned and are retried on the next tick.
type CourierAssignmentJob struct {
	handler  AutoAssignCouriersHandler
	schedule string
	timeout  time.Duration
	assigned prometheus.Counter
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCourierAssignmentJob creates the job. schedule is a six-field cron
// expression (with seconds); assigned may be nil.
func NewCourierAssignmentJob(
	handler AutoAssignCouriersHandler,
	schedule string,
	assigned prometheus.Counter,
	logger *slog.Logger,
) *CourierAssignmentJob {
	return &CourierAssignmentJob{
		handler:  handler,
		schedule: schedule,
		timeout:  DefaultRunTimeout,
		assigned: assigned,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "courier_assignment_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		_, _ = j.RunOnce(ctx)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single assignment pass and returns how many couriers
// were assigned.
func (j *CourierAssignmentJob) RunOnce(ctx context.Context) (int, error) {
	assigned, err := j.handler.Handle(ctx, commands.NewAutoAssignCouriersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
		return 0, err
	}

	if assigned > 0 {
		if j.assigned != nil {
			j.assigned.Add(float64(assigned))
		}
		j.logger.InfoContext(ctx, "Couriers assigned to zones", "count", assigned)
	}
	return assigned, nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *CourierAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}
