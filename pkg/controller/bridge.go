package controller

import (
	"context"
	"errors"
	"io"
	"sort"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/Nayrode/sealci/pkg/metrics"
	"github.com/Nayrode/sealci/pkg/store"
	"github.com/Nayrode/sealci/pkg/types"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// SchedulerClient is the slice of the scheduler surface the bridge needs.
// *client.Client implements it.
type SchedulerClient interface {
	ScheduleAction(ctx context.Context, req *proto.ActionRequest) (grpc.ServerStreamingClient[proto.ActionResponse], error)
}

// Bridge sends a pipeline's actions to the scheduler one at a time and
// records every status transition and log line the stream carries.
type Bridge struct {
	store     store.Store
	scheduler SchedulerClient
	logger    zerolog.Logger
}

// NewBridge creates the scheduling bridge.
func NewBridge(st store.Store, scheduler SchedulerClient) *Bridge {
	return &Bridge{
		store:     st,
		scheduler: scheduler,
		logger:    log.WithComponent("bridge"),
	}
}

// ExecutePipeline dispatches the pipeline's actions in ascending id order.
// Actions of one pipeline never interleave: each stream is consumed to its
// end before the next action is sent. A failed dispatch marks its action
// Error and moves on; there is no retry.
func (b *Bridge) ExecutePipeline(ctx context.Context, pipelineID int64) error {
	pipeline, err := b.store.FindPipelineByID(ctx, pipelineID)
	if err != nil {
		return err
	}

	actions, err := b.store.FindActionsByPipelineID(ctx, pipelineID)
	if err != nil {
		return err
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i].ID < actions[j].ID })

	metrics.PipelinesScheduled.Inc()

	for _, action := range actions {
		b.logger.Info().Int64("action_id", action.ID).Int64("pipeline_id", pipelineID).Msg("Scheduling action")

		if err := b.dispatchAction(ctx, pipeline, action); err != nil {
			b.logger.Error().Err(err).Int64("action_id", action.ID).Msg("Dispatch failed, marking action as error")
			if updateErr := b.recordStatus(ctx, action.ID, types.ActionStatusError); updateErr != nil {
				b.logger.Error().Err(updateErr).Int64("action_id", action.ID).Msg("Failed to record error status")
			}
		}
	}

	return nil
}

// dispatchAction sends one action to the scheduler and consumes its response
// stream to completion.
func (b *Bridge) dispatchAction(ctx context.Context, pipeline *types.Pipeline, action *types.Action) error {
	image := action.ContainerURI
	request := &proto.ActionRequest{
		ActionId: uint32(action.ID),
		Context: &proto.ExecutionContext{
			Type:           proto.RunnerType_RUNNER_TYPE_DOCKER,
			ContainerImage: &image,
		},
		Commands: action.Commands,
		RepoUrl:  pipeline.RepositoryURL,
	}

	stream, err := b.scheduler.ScheduleAction(ctx, request)
	if err != nil {
		return err
	}

	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		actionID := int64(response.GetActionId())
		if result := response.GetResult(); result != nil {
			status := types.ActionStatusFromCompletion(result.GetCompletion())
			if err := b.recordStatus(ctx, actionID, status); err != nil {
				b.logger.Error().Err(err).Int64("action_id", actionID).Msg("Failed to update action status")
			}
		}
		if line := response.GetLog(); line != "" {
			if err := b.store.AppendLog(ctx, actionID, line); err != nil {
				b.logger.Error().Err(err).Int64("action_id", actionID).Msg("Failed to append log")
			}
		}
	}
}

func (b *Bridge) recordStatus(ctx context.Context, actionID int64, status types.ActionStatus) error {
	if err := b.store.UpdateActionStatus(ctx, actionID, status); err != nil {
		return err
	}
	metrics.ActionStatusUpdates.WithLabelValues(string(status)).Inc()
	return nil
}
