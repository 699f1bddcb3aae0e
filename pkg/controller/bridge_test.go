package controller

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/store"
	"github.com/Nayrode/sealci/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// scriptEntry describes what the stub scheduler streams for one action.
type scriptEntry struct {
	statuses []proto.ActionStatus
	logs     []string
	err      error
}

// stubScheduler serves the Controller surface from a per-action script and
// records dispatch order.
type stubScheduler struct {
	proto.UnimplementedControllerServer

	mu       sync.Mutex
	received []uint32
	script   map[uint32]scriptEntry
}

func (s *stubScheduler) ScheduleAction(req *proto.ActionRequest, stream grpc.ServerStreamingServer[proto.ActionResponse]) error {
	s.mu.Lock()
	s.received = append(s.received, req.GetActionId())
	entry, ok := s.script[req.GetActionId()]
	s.mu.Unlock()

	if !ok {
		return status.Error(codes.FailedPrecondition, "no agents available")
	}

	for i, actionStatus := range entry.statuses {
		var line string
		if i < len(entry.logs) {
			line = entry.logs[i]
		}
		err := stream.Send(&proto.ActionResponse{
			ActionId: req.GetActionId(),
			Log:      line,
			Result:   &proto.ActionResult{Completion: actionStatus},
		})
		if err != nil {
			return err
		}
	}
	return entry.err
}

func (s *stubScheduler) Received() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.received...)
}

// grpcScheduler adapts a raw Controller client to the bridge's
// SchedulerClient interface the way *client.Client does in production.
type grpcScheduler struct {
	client proto.ControllerClient
}

func (g grpcScheduler) ScheduleAction(ctx context.Context, req *proto.ActionRequest) (grpc.ServerStreamingClient[proto.ActionResponse], error) {
	return g.client.ScheduleAction(ctx, req)
}

func startStubScheduler(t *testing.T, stub *stubScheduler) SchedulerClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	grpcServer := grpc.NewServer()
	proto.RegisterControllerServer(grpcServer, stub)
	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return grpcScheduler{client: proto.NewControllerClient(conn)}
}

// seedPipeline persists a pipeline with n Pending actions and returns it
// with the actions attached.
func seedPipeline(t *testing.T, st store.Store, n int) *types.Pipeline {
	t.Helper()
	ctx := context.Background()

	pipeline, err := st.CreatePipeline(ctx, "https://example.com/repo.git", "p")
	require.NoError(t, err)

	names := []string{"build", "test", "package", "publish"}
	for i := 0; i < n; i++ {
		action, err := st.CreateAction(ctx, pipeline.ID, names[i%len(names)], "ubuntu:latest",
			types.ActionTypeContainer, types.ActionStatusPending, []string{"echo hi"})
		require.NoError(t, err)
		pipeline.Actions = append(pipeline.Actions, action)
	}
	return pipeline
}

func actionStatus(t *testing.T, st store.Store, pipelineID, actionID int64) types.ActionStatus {
	t.Helper()
	actions, err := st.FindActionsByPipelineID(context.Background(), pipelineID)
	require.NoError(t, err)
	for _, action := range actions {
		if action.ID == actionID {
			return action.Status
		}
	}
	t.Fatalf("action %d not found", actionID)
	return ""
}

func TestExecutePipelineRecordsStatusesInOrder(t *testing.T) {
	st := store.NewMemoryStore()
	pipeline := seedPipeline(t, st, 3)
	ids := []int64{pipeline.Actions[0].ID, pipeline.Actions[1].ID, pipeline.Actions[2].ID}

	stub := &stubScheduler{script: map[uint32]scriptEntry{
		uint32(ids[0]): {
			statuses: []proto.ActionStatus{proto.ActionStatus_ACTION_STATUS_RUNNING, proto.ActionStatus_ACTION_STATUS_COMPLETED},
			logs:     []string{"cloning", "done"},
		},
		uint32(ids[1]): {
			statuses: []proto.ActionStatus{proto.ActionStatus_ACTION_STATUS_RUNNING},
			err:      status.Error(codes.Internal, "agent stream broke"),
		},
		uint32(ids[2]): {
			statuses: []proto.ActionStatus{proto.ActionStatus_ACTION_STATUS_COMPLETED},
		},
	}}

	bridge := NewBridge(st, startStubScheduler(t, stub))
	require.NoError(t, bridge.ExecutePipeline(context.Background(), pipeline.ID))

	// Dispatch order is ascending action id, and the failed middle action
	// did not stop the third one.
	assert.Equal(t, []uint32{uint32(ids[0]), uint32(ids[1]), uint32(ids[2])}, stub.Received())

	assert.Equal(t, types.ActionStatusCompleted, actionStatus(t, st, pipeline.ID, ids[0]))
	assert.Equal(t, types.ActionStatusError, actionStatus(t, st, pipeline.ID, ids[1]))
	assert.Equal(t, types.ActionStatusCompleted, actionStatus(t, st, pipeline.ID, ids[2]))

	logs, err := st.FindLogsByActionID(context.Background(), ids[0])
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "cloning", logs[0].Data)
	assert.Equal(t, "done", logs[1].Data)
}

func TestExecutePipelineNoAgents(t *testing.T) {
	st := store.NewMemoryStore()
	pipeline := seedPipeline(t, st, 2)

	// Empty script: every dispatch fails before any response.
	stub := &stubScheduler{script: map[uint32]scriptEntry{}}
	bridge := NewBridge(st, startStubScheduler(t, stub))

	require.NoError(t, bridge.ExecutePipeline(context.Background(), pipeline.ID))

	assert.Len(t, stub.Received(), 2, "every action is still attempted")
	for _, action := range pipeline.Actions {
		assert.Equal(t, types.ActionStatusError, actionStatus(t, st, pipeline.ID, action.ID))
	}
}

func TestExecutePipelineUnknownPipeline(t *testing.T) {
	bridge := NewBridge(store.NewMemoryStore(), startStubScheduler(t, &stubScheduler{}))
	assert.ErrorIs(t, bridge.ExecutePipeline(context.Background(), 42), store.ErrNotFound)
}

func TestCreateManifestPipelinePersistsAndSchedules(t *testing.T) {
	st := store.NewMemoryStore()

	// Action ids are assigned in sorted-name order: build=1, test=2.
	stub := &stubScheduler{script: map[uint32]scriptEntry{
		1: {statuses: []proto.ActionStatus{proto.ActionStatus_ACTION_STATUS_COMPLETED}},
		2: {statuses: []proto.ActionStatus{proto.ActionStatus_ACTION_STATUS_COMPLETED}},
	}}
	service := NewPipelineService(st, NewBridge(st, startStubScheduler(t, stub)))

	manifest, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)

	pipeline, err := service.CreateManifestPipeline(context.Background(), manifest, "https://example.com/repo.git")
	require.NoError(t, err)
	require.Len(t, pipeline.Actions, 2)
	assert.Equal(t, "build", pipeline.Actions[0].Name)
	assert.Equal(t, "test", pipeline.Actions[1].Name)
	for _, action := range pipeline.Actions {
		assert.Equal(t, types.ActionStatusPending, action.Status, "creation returns before scheduling")
	}

	// The background bridge eventually records both completions.
	require.Eventually(t, func() bool {
		actions, err := st.FindActionsByPipelineID(context.Background(), pipeline.ID)
		if err != nil || len(actions) != 2 {
			return false
		}
		for _, action := range actions {
			if action.Status != types.ActionStatusCompleted {
				return false
			}
		}
		return true
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, []uint32{1, 2}, stub.Received())
}

func TestFindAllVerboseAttachesLogs(t *testing.T) {
	st := store.NewMemoryStore()
	pipeline := seedPipeline(t, st, 1)
	require.NoError(t, st.AppendLog(context.Background(), pipeline.Actions[0].ID, "hello"))

	service := NewPipelineService(st, NewBridge(st, startStubScheduler(t, &stubScheduler{})))

	pipelines, err := service.FindAll(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, pipelines, 1)
	require.Len(t, pipelines[0].Actions, 1)
	assert.Equal(t, []string{"hello"}, pipelines[0].Actions[0].Logs)

	// Non-verbose reads leave logs out.
	pipelines, err = service.FindAll(context.Background(), false)
	require.NoError(t, err)
	assert.Nil(t, pipelines[0].Actions[0].Logs)
}
