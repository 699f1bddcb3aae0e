package agent

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/events"
	"github.com/Nayrode/sealci/pkg/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func strptr(s string) *string { return &s }

// startActionServer runs the agent's gRPC surface on an in-memory listener.
func startActionServer(t *testing.T, factory runtime.Factory) proto.ActionServiceClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	proto.RegisterActionServiceServer(server, NewServer(NewActionService(factory, events.NewStateBroker())))

	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return proto.NewActionServiceClient(conn)
}

func TestExecutionActionStreamsResponses(t *testing.T) {
	factory := &runtime.MockFactory{}
	client := startActionServer(t, factory)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.ExecutionAction(ctx, &proto.ActionRequest{
		ActionId: 69420,
		Context: &proto.ExecutionContext{
			Type:           proto.RunnerType_RUNNER_TYPE_DOCKER,
			ContainerImage: strptr("test"),
		},
		Commands: []string{"echo hi", "shutdown now"},
		RepoUrl:  "r",
	})
	require.NoError(t, err)

	var count int
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		count++
		assert.Equal(t, uint32(69420), resp.GetActionId(), "every streamed response carries the request's action id")
	}
	assert.Equal(t, 2, count, "one log entry per command echo")

	// The container behind the request is gone exactly once.
	created := factory.Created()
	require.Len(t, created, 1)
	assert.Equal(t, 1, created[0].RemoveCalls())
	assert.Equal(t, "test", created[0].Image)
}

func TestExecutionActionMissingContext(t *testing.T) {
	client := startActionServer(t, &runtime.MockFactory{})

	stream, err := client.ExecutionAction(context.Background(), &proto.ActionRequest{ActionId: 1})
	require.NoError(t, err)

	_, err = stream.Recv()
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestExecutionActionMissingImage(t *testing.T) {
	client := startActionServer(t, &runtime.MockFactory{})

	stream, err := client.ExecutionAction(context.Background(), &proto.ActionRequest{
		ActionId: 1,
		Context:  &proto.ExecutionContext{Type: proto.RunnerType_RUNNER_TYPE_DOCKER},
	})
	require.NoError(t, err)

	_, err = stream.Recv()
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestExecutionActionCreateFailure(t *testing.T) {
	factory := &runtime.MockFactory{ShouldFail: true}
	client := startActionServer(t, factory)

	stream, err := client.ExecutionAction(context.Background(), &proto.ActionRequest{
		ActionId: 2,
		Context: &proto.ExecutionContext{
			Type:           proto.RunnerType_RUNNER_TYPE_DOCKER,
			ContainerImage: strptr("test"),
		},
		RepoUrl: "r",
	})
	require.NoError(t, err)

	// The failed clone surfaces one terminal entry, then the stream fails
	// with a precondition error.
	sawPrecondition := false
	for i := 0; i < 3; i++ {
		_, err = stream.Recv()
		if err != nil {
			sawPrecondition = true
			assert.Equal(t, codes.FailedPrecondition, status.Code(err))
			break
		}
	}
	assert.True(t, sawPrecondition)

	// The partially prepared container was removed, not leaked.
	created := factory.Created()
	require.Len(t, created, 1)
	assert.Equal(t, 1, created[0].RemoveCalls())
}

func TestExecutionActionNonZeroExit(t *testing.T) {
	factory := &runtime.MockFactory{ExitCodes: []int{0, 3}}
	client := startActionServer(t, factory)

	stream, err := client.ExecutionAction(context.Background(), &proto.ActionRequest{
		ActionId: 7,
		Context: &proto.ExecutionContext{
			Type:           proto.RunnerType_RUNNER_TYPE_DOCKER,
			ContainerImage: strptr("test"),
		},
		Commands: []string{"false", "echo unreachable"},
		RepoUrl:  "r",
	})
	require.NoError(t, err)

	var msgs []*proto.ActionResponseStream
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err, "failures travel in-band, the stream itself ends cleanly")
		msgs = append(msgs, resp)
	}

	require.NotEmpty(t, msgs)
	terminal := msgs[len(msgs)-1]
	assert.Equal(t, proto.ActionStatus_ACTION_STATUS_ERROR, terminal.GetResult().GetCompletion())
	assert.Equal(t, int32(3), terminal.GetResult().GetExitCode())
}
