package controller

import (
	"context"
	"sort"

	"github.com/Nayrode/sealci/pkg/log"
	"github.com/Nayrode/sealci/pkg/store"
	"github.com/Nayrode/sealci/pkg/types"
	"github.com/rs/zerolog"
)

// Config holds controller configuration.
type Config struct {
	// SchedulerAddr is the scheduler's gRPC endpoint (host:port).
	SchedulerAddr string

	// DatabaseURL is the Postgres connection string.
	DatabaseURL string

	// Host and Port form the admin listen address (metrics).
	Host string
	Port uint32
}

// PipelineService is the controller's application surface: what the HTTP
// façade in front of it calls.
type PipelineService struct {
	store  store.Store
	bridge *Bridge
	logger zerolog.Logger
}

// NewPipelineService creates the service over a store and the scheduling
// bridge.
func NewPipelineService(st store.Store, bridge *Bridge) *PipelineService {
	return &PipelineService{
		store:  st,
		bridge: bridge,
		logger: log.WithComponent("controller"),
	}
}

// CreateManifestPipeline persists the pipeline and its actions, then hands
// the pipeline to the scheduling bridge in the background. The caller gets
// the persisted pipeline back immediately; scheduling progress lands in the
// store as status transitions.
func (s *PipelineService) CreateManifestPipeline(ctx context.Context, manifest *ManifestPipeline, repositoryURL string) (*types.Pipeline, error) {
	pipeline, err := s.store.CreatePipeline(ctx, repositoryURL, manifest.Name)
	if err != nil {
		return nil, err
	}

	// Manifest actions are a map; creation order decides action ids and
	// therefore dispatch order, so make it deterministic.
	names := make([]string, 0, len(manifest.Actions))
	for name := range manifest.Actions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		actionManifest := manifest.Actions[name]
		action, err := s.store.CreateAction(ctx, pipeline.ID, name,
			actionManifest.Configuration.Container, types.ActionTypeContainer,
			types.ActionStatusPending, actionManifest.Commands)
		if err != nil {
			return nil, err
		}
		pipeline.Actions = append(pipeline.Actions, action)
	}

	// Scheduling happens after the response returns; it must not inherit
	// the request's lifetime.
	go func() {
		if err := s.bridge.ExecutePipeline(context.Background(), pipeline.ID); err != nil {
			s.logger.Error().Err(err).Int64("pipeline_id", pipeline.ID).Msg("Pipeline scheduling failed")
		}
	}()

	return pipeline, nil
}

// FindAll returns every pipeline with its actions. With verbose set, each
// action also carries its stored log lines.
func (s *PipelineService) FindAll(ctx context.Context, verbose bool) ([]*types.Pipeline, error) {
	pipelines, err := s.store.FindPipelines(ctx)
	if err != nil {
		return nil, err
	}

	for _, pipeline := range pipelines {
		if err := s.attachActions(ctx, pipeline, verbose); err != nil {
			return nil, err
		}
	}
	return pipelines, nil
}

// FindByID returns one pipeline with its actions, without logs.
func (s *PipelineService) FindByID(ctx context.Context, pipelineID int64) (*types.Pipeline, error) {
	pipeline, err := s.store.FindPipelineByID(ctx, pipelineID)
	if err != nil {
		return nil, err
	}
	if err := s.attachActions(ctx, pipeline, false); err != nil {
		return nil, err
	}
	return pipeline, nil
}

func (s *PipelineService) attachActions(ctx context.Context, pipeline *types.Pipeline, verbose bool) error {
	actions, err := s.store.FindActionsByPipelineID(ctx, pipeline.ID)
	if err != nil {
		return err
	}

	if verbose {
		for _, action := range actions {
			entries, err := s.store.FindLogsByActionID(ctx, action.ID)
			if err != nil {
				return err
			}
			action.Logs = make([]string, 0, len(entries))
			for _, entry := range entries {
				action.Logs = append(action.Logs, entry.Data)
			}
		}
	}

	pipeline.Actions = actions
	return nil
}
