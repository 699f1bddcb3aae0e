package agent

import (
	"context"
	"errors"
	"fmt"
	"testing"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/events"
	"github.com/Nayrode/sealci/pkg/runtime"
	"github.com/Nayrode/sealci/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drainPipe closes the pipe, then reads whatever is still queued.
func drainPipe(t *testing.T, pipe *OutputPipe) []*proto.ActionResponseStream {
	t.Helper()
	pipe.Close()

	var msgs []*proto.ActionResponseStream
	for {
		msg, ok := pipe.Next(context.Background())
		if !ok {
			return msgs
		}
		msgs = append(msgs, msg)
	}
}

func TestSetupRepositoryRunsGitClone(t *testing.T) {
	container := &runtime.MockContainer{}
	pipe := NewOutputPipe(42)
	action := NewAction(42, container, []string{"echo 'test'"}, pipe, "https://github.com/user/repo.git", events.NewStateBroker())

	require.NoError(t, action.SetupRepository(context.Background()))

	calls := container.ExecCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "git clone --depth 1 https://github.com/user/repo.git 42", calls[0].Command)
	assert.Empty(t, calls[0].Workdir, "clone runs in the container's default directory")
}

func TestExecuteRunsAllStepsInActionWorkdir(t *testing.T) {
	container := &runtime.MockContainer{}
	pipe := NewOutputPipe(123)
	commands := []string{"echo 'step 1'", "cd /app && ls -la", "echo 'step 3'"}
	action := NewAction(123, container, commands, pipe, "https://example.com/repo.git", events.NewStateBroker())

	require.NoError(t, action.SetupRepository(context.Background()))
	require.NoError(t, action.Execute(context.Background()))

	calls := container.ExecCalls()
	require.Len(t, calls, 4, "one clone plus one exec per command")
	assert.Equal(t, "git clone --depth 1 https://example.com/repo.git 123", calls[0].Command)
	assert.Empty(t, calls[0].Workdir)
	for i, command := range commands {
		assert.Equal(t, command, calls[i+1].Command)
		assert.Equal(t, "/123", calls[i+1].Workdir)
	}
}

func TestExecuteFailingContainer(t *testing.T) {
	container := &runtime.MockContainer{ShouldFail: true}
	pipe := NewOutputPipe(1)
	action := NewAction(1, container, []string{"echo 'will fail'"}, pipe, "https://example.com/repo.git", events.NewStateBroker())

	err := action.SetupRepository(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, runtime.ErrContainerExec))

	err = action.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, runtime.ErrContainerExec))

	// No terminal success marker: the stream carries only failure entries.
	for _, msg := range drainPipe(t, pipe) {
		assert.NotEqual(t, proto.ActionStatus_ACTION_STATUS_COMPLETED, msg.GetResult().GetCompletion())
	}
}

func TestExecuteNonZeroExitStopsAction(t *testing.T) {
	container := &runtime.MockContainer{ExitCode: 2}
	pipe := NewOutputPipe(9)
	action := NewAction(9, container, []string{"false", "echo 'never runs'"}, pipe, "r", events.NewStateBroker())

	err := action.Execute(context.Background())
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)

	calls := container.ExecCalls()
	require.Len(t, calls, 1, "remaining commands are skipped after a failure")

	msgs := drainPipe(t, pipe)
	require.NotEmpty(t, msgs)
	terminal := msgs[len(msgs)-1]
	assert.Equal(t, proto.ActionStatus_ACTION_STATUS_ERROR, terminal.GetResult().GetCompletion())
	assert.Equal(t, int32(2), terminal.GetResult().GetExitCode())
	assert.Equal(t, uint32(9), terminal.GetActionId())
}

func TestExecuteEmitsLogsBeforeTerminalMarker(t *testing.T) {
	container := &runtime.MockContainer{ExitCode: 1, Output: "line one\nline two\n"}
	pipe := NewOutputPipe(5)
	action := NewAction(5, container, []string{"cat file"}, pipe, "r", events.NewStateBroker())

	require.Error(t, action.Execute(context.Background()))

	msgs := drainPipe(t, pipe)
	require.GreaterOrEqual(t, len(msgs), 3)
	for _, msg := range msgs[:len(msgs)-1] {
		assert.Equal(t, proto.ActionStatus_ACTION_STATUS_COMPLETED, msg.GetResult().GetCompletion())
	}
	assert.Equal(t, proto.ActionStatus_ACTION_STATUS_ERROR, msgs[len(msgs)-1].GetResult().GetCompletion())
}

func TestExecuteCommandCountBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		commands int
	}{
		{name: "zero commands", commands: 0},
		{name: "one command", commands: 1},
		{name: "one thousand commands", commands: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commands := make([]string, 0, tt.commands)
			for i := 0; i < tt.commands; i++ {
				commands = append(commands, fmt.Sprintf("echo step-%d", i))
			}

			container := &runtime.MockContainer{}
			pipe := NewOutputPipe(7)
			action := NewAction(7, container, commands, pipe, "r", events.NewStateBroker())

			require.NoError(t, action.Execute(context.Background()))
			assert.Len(t, container.ExecCalls(), tt.commands)
			assert.Equal(t, 1, container.RemoveCalls(), "container removed exactly once")
		})
	}
}

func TestCleanupRunsExactlyOnce(t *testing.T) {
	container := &runtime.MockContainer{}
	pipe := NewOutputPipe(3)
	action := NewAction(3, container, []string{"echo hi"}, pipe, "r", events.NewStateBroker())

	require.NoError(t, action.Execute(context.Background()))

	// The stream handler's deferred cleanup must not remove a second time.
	require.NoError(t, action.Cleanup(context.Background()))
	require.NoError(t, action.Cleanup(context.Background()))
	assert.Equal(t, 1, container.RemoveCalls())
}

func TestExecutePublishesStateTransitions(t *testing.T) {
	broker := events.NewStateBroker()
	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	container := &runtime.MockContainer{}
	pipe := NewOutputPipe(11)
	action := NewAction(11, container, nil, pipe, "r", broker)

	require.NoError(t, action.Execute(context.Background()))

	// Last-value semantics: the terminal state is what survives.
	event := <-sub
	assert.Equal(t, uint32(11), event.ActionID)
	assert.Equal(t, types.ActionStateCompleted, event.State)
}
