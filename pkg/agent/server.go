package agent

import (
	"context"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/Nayrode/sealci/pkg/metrics"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements the ActionService gRPC surface called by the scheduler.
type Server struct {
	proto.UnimplementedActionServiceServer

	actions *ActionService
	logger  zerolog.Logger
}

// NewServer creates the action server over the per-request action factory.
func NewServer(actions *ActionService) *Server {
	return &Server{
		actions: actions,
		logger:  log.WithComponent("agent"),
	}
}

// ExecutionAction runs one action and streams its log lines and terminal
// marker back to the scheduler. The response stream ends cleanly even when
// the action fails: failures travel in-band as completion=3 entries.
func (s *Server) ExecutionAction(req *proto.ActionRequest, stream grpc.ServerStreamingServer[proto.ActionResponseStream]) error {
	ctx := stream.Context()

	execContext := req.GetContext()
	if execContext == nil {
		return status.Error(codes.InvalidArgument, "Context is missing")
	}
	if execContext.ContainerImage == nil {
		return status.Error(codes.InvalidArgument, "Container image is missing")
	}

	pipe := NewOutputPipe(req.GetActionId())
	action, err := s.actions.Create(ctx, execContext.GetContainerImage(), req.GetCommands(), pipe, req.GetRepoUrl(), req.GetActionId())
	if err != nil {
		s.logger.Error().Err(err).Uint32("action_id", req.GetActionId()).Msg("Failed to create action")
		// Best effort: tell the caller what went wrong before failing the
		// stream. The container was already removed by the factory.
		_ = stream.Send(&proto.ActionResponseStream{
			ActionId: req.GetActionId(),
			Log:      err.Error(),
			Result:   &proto.ActionResult{Completion: proto.ActionStatus_ACTION_STATUS_ERROR},
		})
		return status.Error(codes.FailedPrecondition, "Failed to create action")
	}

	// Cleanup must run even when the controller cancels the stream
	// mid-action, so it gets a context that survives the cancellation.
	defer func() {
		if err := action.Cleanup(context.WithoutCancel(ctx)); err != nil {
			s.logger.Error().Err(err).Uint32("action_id", action.ID).Msg("Container cleanup failed")
		}
	}()

	done := make(chan error, 1)
	go func() {
		err := action.Execute(ctx)
		pipe.Close()
		done <- err
	}()

	for {
		msg, ok := pipe.Next(ctx)
		if !ok {
			break
		}
		if err := stream.Send(msg); err != nil {
			return err
		}
	}

	// A cancelled stream stops the relay before the action finishes.
	// Removing the container now closes its exec streams, which unblocks
	// the execution task so the wait below cannot hang.
	if ctx.Err() != nil {
		if err := action.Cleanup(context.WithoutCancel(ctx)); err != nil {
			s.logger.Error().Err(err).Uint32("action_id", action.ID).Msg("Container cleanup after cancellation failed")
		}
	}

	if err := <-done; err != nil {
		s.logger.Error().Err(err).Uint32("action_id", action.ID).Msg("Action failed")
		metrics.ActionsExecuted.WithLabelValues("failed").Inc()
	} else {
		s.logger.Info().Uint32("action_id", action.ID).Msg("Action executed")
		metrics.ActionsExecuted.WithLabelValues("completed").Inc()
	}

	return nil
}
