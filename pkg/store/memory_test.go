package store

import (
	"context"
	"testing"

	"github.com/Nayrode/sealci/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePipelineRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	created, err := s.CreatePipeline(ctx, "https://example.com/repo.git", "build")
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	found, err := s.FindPipelineByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "build", found.Name)
	assert.Equal(t, "https://example.com/repo.git", found.RepositoryURL)

	_, err = s.FindPipelineByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreActionsListInIDOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	pipeline, err := s.CreatePipeline(ctx, "r", "p")
	require.NoError(t, err)

	for _, name := range []string{"lint", "test", "package"} {
		_, err := s.CreateAction(ctx, pipeline.ID, name, "ubuntu:latest", types.ActionTypeContainer, types.ActionStatusPending, []string{"echo " + name})
		require.NoError(t, err)
	}

	actions, err := s.FindActionsByPipelineID(ctx, pipeline.ID)
	require.NoError(t, err)
	require.Len(t, actions, 3)
	for i := 1; i < len(actions); i++ {
		assert.Less(t, actions[i-1].ID, actions[i].ID)
	}
	assert.Equal(t, []string{"echo lint"}, actions[0].Commands)
}

func TestMemoryStoreActionForUnknownPipeline(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.CreateAction(context.Background(), 7, "a", "img", types.ActionTypeContainer, types.ActionStatusPending, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUpdateActionStatus(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	pipeline, err := s.CreatePipeline(ctx, "r", "p")
	require.NoError(t, err)
	action, err := s.CreateAction(ctx, pipeline.ID, "a", "img", types.ActionTypeContainer, types.ActionStatusPending, nil)
	require.NoError(t, err)

	require.NoError(t, s.UpdateActionStatus(ctx, action.ID, types.ActionStatusRunning))

	actions, err := s.FindActionsByPipelineID(ctx, pipeline.ID)
	require.NoError(t, err)
	assert.Equal(t, types.ActionStatusRunning, actions[0].Status)

	assert.ErrorIs(t, s.UpdateActionStatus(ctx, 999, types.ActionStatusError), ErrNotFound)
}

func TestMemoryStoreLogsAppendOnly(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.AppendLog(ctx, 1, "first"))
	require.NoError(t, s.AppendLog(ctx, 1, "second"))
	require.NoError(t, s.AppendLog(ctx, 2, "other action"))

	logs, err := s.FindLogsByActionID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "first", logs[0].Data)
	assert.Equal(t, "second", logs[1].Data)
}
