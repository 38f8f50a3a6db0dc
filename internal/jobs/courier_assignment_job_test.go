package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zonedelivery/internal/core/application/usecases/commands"
	"zonedelivery/internal/jobs"
	"zonedelivery/internal/metrics"
)

type MockAutoAssignHandler struct {
	mock.Mock
}

func (m *MockAutoAssignHandler) Handle(ctx context.Context, cmd commands.AutoAssignCouriersCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestCourierAssignmentJob_RunOnce_CountsAssignments(t *testing.T) {
	handler := &MockAutoAssignHandler{}
	m := metrics.New()
	handler.On("Handle", mock.Anything, mock.AnythingOfType("commands.AutoAssignCouriersCommand")).
		Return(3, nil).Once()

	job := jobs.NewCourierAssignmentJob(handler, "* * * * * *", m.AutoAssigned, discardLogger())
	assigned, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, assigned)
	assert.Contains(t, scrape(t, m), "courier_auto_assignments_total 3")
	handler.AssertExpectations(t)
}

func TestCourierAssignmentJob_RunOnce_PropagatesFailure(t *testing.T) {
	handler := &MockAutoAssignHandler{}
	m := metrics.New()
	boom := errors.New("database unavailable")
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, boom).Once()

	job := jobs.NewCourierAssignmentJob(handler, "* * * * * *", m.AutoAssigned, discardLogger())
	assigned, err := job.RunOnce(context.Background())

	require.ErrorIs(t, err, boom)
	assert.Zero(t, assigned)
	assert.Contains(t, scrape(t, m), "courier_auto_assignments_total 0")
}

func TestCourierAssignmentJob_RunOnce_WithoutCounter(t *testing.T) {
	handler := &MockAutoAssignHandler{}
	handler.On("Handle", mock.Anything, mock.Anything).Return(1, nil).Once()

	job := jobs.NewCourierAssignmentJob(handler, "* * * * * *", nil, discardLogger())
	assigned, err := job.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, assigned)
}

func TestCourierAssignmentJob_Start_InvalidSchedule(t *testing.T) {
	job := jobs.NewCourierAssignmentJob(&MockAutoAssignHandler{}, "every now and then", nil, discardLogger())

	require.Error(t, job.Start())
}

func TestCourierAssignmentJob_RunsOnSchedule(t *testing.T) {
	handler := &MockAutoAssignHandler{}
	ran := make(chan struct{}, 1)
	handler.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case ran <- struct{}{}:
			default:
			}
		}).
		Return(0, nil)

	job := jobs.NewCourierAssignmentJob(handler, "* * * * * *", nil, discardLogger())
	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run within three seconds")
	}
}

func TestJobManager_EmptyScheduleDisablesAssignment(t *testing.T) {
	handler := &MockAutoAssignHandler{}

	jm := jobs.NewJobManager(handler, "", nil, discardLogger())

	require.NoError(t, jm.StartAll())
	jm.StopAll()
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_InvalidScheduleFailsToStart(t *testing.T) {
	jm := jobs.NewJobManager(&MockAutoAssignHandler{}, "61 * * * * *", nil, discardLogger())

	err := jm.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "courier assignment job")
}
