package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierAssignmentJob *CourierAssignmentJob
	logger               *slog.Logger
}

// NewJobManager creates the job manager. An empty assignmentSchedule disables
// the courier assignment job.
func NewJobManager(
	autoAssignHandler AutoAssignCouriersHandler,
	assignmentSchedule string,
	assigned prometheus.Counter,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		logger: logger.With("component", "job_manager"),
	}
	if assignmentSchedule != "" {
		jm.courierAssignmentJob = NewCourierAssignmentJob(autoAssignHandler, assignmentSchedule, assigned, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.courierAssignmentJob == nil {
		jm.logger.InfoContext(context.Background(), "Courier assignment job disabled")
		return nil
	}

	if err := jm.courierAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.courierAssignmentJob != nil {
		jm.courierAssignmentJob.Stop()
	}
}
