package agent

import (
	"context"
	"testing"
	"time"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputLogCarriesActionIDAndResult(t *testing.T) {
	pipe := NewOutputPipe(42)

	exitCode := int32(0)
	pipe.OutputLog("Test log message", proto.ActionStatus_ACTION_STATUS_COMPLETED, &exitCode)

	msg, ok := pipe.Next(context.Background())
	require.True(t, ok)
	assert.Equal(t, uint32(42), msg.GetActionId())
	assert.Equal(t, "Test log message", msg.GetLog())
	require.NotNil(t, msg.GetResult())
	assert.Equal(t, proto.ActionStatus_ACTION_STATUS_COMPLETED, msg.GetResult().GetCompletion())
	require.NotNil(t, msg.GetResult().ExitCode)
	assert.Equal(t, int32(0), msg.GetResult().GetExitCode())
}

func TestOutputLogWithoutExitCode(t *testing.T) {
	pipe := NewOutputPipe(123)
	pipe.OutputLog("no exit code", proto.ActionStatus_ACTION_STATUS_RUNNING, nil)

	msg, ok := pipe.Next(context.Background())
	require.True(t, ok)
	assert.Nil(t, msg.GetResult().ExitCode)
}

func TestNextPreservesOrderAndDrainsAfterClose(t *testing.T) {
	pipe := NewOutputPipe(1)
	for i := 0; i < 5; i++ {
		pipe.OutputLog(string(rune('a'+i)), proto.ActionStatus_ACTION_STATUS_COMPLETED, nil)
	}
	pipe.Close()

	var got []string
	for {
		msg, ok := pipe.Next(context.Background())
		if !ok {
			break
		}
		got = append(got, msg.GetLog())
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
}

func TestOutputLogAfterCloseIsDropped(t *testing.T) {
	pipe := NewOutputPipe(1)
	pipe.Close()
	pipe.OutputLog("late", proto.ActionStatus_ACTION_STATUS_COMPLETED, nil)

	_, ok := pipe.Next(context.Background())
	assert.False(t, ok)
}

func TestNextReturnsOnContextCancel(t *testing.T) {
	pipe := NewOutputPipe(1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, ok := pipe.Next(ctx)
	assert.False(t, ok)
}
