package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/healthsure/premium-api/services/monitoring/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTaskRejectsDuplicates(t *testing.T) {
	ts := NewTaskScheduler(logging.NewLogger())
	defer ts.Stop()

	noop := func(context.Context) error { return nil }

	_, err := ts.AddTask("load", "load", noop, 0)
	require.NoError(t, err)

	_, err = ts.AddTask("load", "load again", noop, 0)
	assert.Error(t, err)
}

func TestRunTask(t *testing.T) {
	ts := NewTaskScheduler(logging.NewLogger())
	defer ts.Stop()

	ran := make(chan struct{})
	_, err := ts.AddTask("load", "load", func(context.Context) error {
		close(ran)
		return nil
	}, 0)
	require.NoError(t, err)

	require.NoError(t, ts.RunTask("load"))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}

func TestRunTaskUnknownID(t *testing.T) {
	ts := NewTaskScheduler(logging.NewLogger())
	defer ts.Stop()

	assert.Error(t, ts.RunTask("missing"))
	assert.Error(t, ts.ScheduleTask("missing", time.Second))
}

func TestScheduleRecurringTask(t *testing.T) {
	ts := NewTaskScheduler(logging.NewLogger())
	defer ts.Stop()

	runs := make(chan struct{}, 3)
	_, err := ts.AddTask("refresh", "refresh", func(context.Context) error {
		runs <- struct{}{}
		return nil
	}, 10*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, ts.ScheduleTask("refresh", 10*time.Millisecond))

	for i := 0; i < 2; i++ {
		select {
		case <-runs:
		case <-time.After(2 * time.Second):
			t.Fatalf("recurring task stopped after %d runs", i)
		}
	}
}

func TestRemoveAndGetTask(t *testing.T) {
	ts := NewTaskScheduler(logging.NewLogger())
	defer ts.Stop()

	_, err := ts.AddTask("load", "load", func(context.Context) error { return nil }, 0)
	require.NoError(t, err)

	task, err := ts.GetTask("load")
	require.NoError(t, err)
	assert.Equal(t, "load", task.ID)

	require.NoError(t, ts.RemoveTask("load"))

	_, err = ts.GetTask("load")
	assert.Error(t, err)
}

func TestTaskErrorReported(t *testing.T) {
	ts := NewTaskScheduler(logging.NewLogger())
	defer ts.Stop()

	task, err := ts.AddTask("load", "load", func(context.Context) error {
		return context.DeadlineExceeded
	}, 0)
	require.NoError(t, err)

	require.NoError(t, ts.RunTask("load"))

	select {
	case err := <-task.ErrorChan:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("no error reported")
	}
}
