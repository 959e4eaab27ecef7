package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdeck/internal/model"
)

func TestReconcileRepairsDriftedCounts(t *testing.T) {
	tasks, stats, _ := newTestServices(t)
	ctx := context.Background()

	_, err := tasks.Create(ctx, "u1", model.TaskInput{Title: "real"})
	require.NoError(t, err)

	// Simulate out-of-band drift in the stored projection.
	wrongTotal, wrongCompleted := 40, 12
	_, err = stats.Update(ctx, "u1", model.StatsPatch{
		TotalTasks:     &wrongTotal,
		CompletedTasks: &wrongCompleted,
	})
	require.NoError(t, err)

	before, err := stats.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, before.LastActiveDate)

	require.NoError(t, stats.Reconcile(ctx))

	after, err := stats.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, after.TotalTasks)
	assert.Equal(t, 0, after.CompletedTasks)
	// The sweep is not user activity.
	require.NotNil(t, after.LastActiveDate)
	assert.Equal(t, before.LastActiveDate.Unix(), after.LastActiveDate.Unix())
}

func TestReconcileWithoutStatsRowsIsNoop(t *testing.T) {
	_, stats, _ := newTestServices(t)
	require.NoError(t, stats.Reconcile(context.Background()))
}
