package store

import (
	"context"
	"errors"

	"github.com/Nayrode/sealci/pkg/types"
)

// ErrNotFound is returned when a pipeline or action does not exist.
var ErrNotFound = errors.New("not found")

// PipelineRepository persists pipelines.
type PipelineRepository interface {
	CreatePipeline(ctx context.Context, repositoryURL, name string) (*types.Pipeline, error)
	FindPipelines(ctx context.Context) ([]*types.Pipeline, error)
	FindPipelineByID(ctx context.Context, id int64) (*types.Pipeline, error)
}

// ActionRepository persists actions and their commands.
type ActionRepository interface {
	CreateAction(ctx context.Context, pipelineID int64, name, containerURI string, actionType types.ActionType, status types.ActionStatus, commands []string) (*types.Action, error)
	FindActionsByPipelineID(ctx context.Context, pipelineID int64) ([]*types.Action, error)
	UpdateActionStatus(ctx context.Context, actionID int64, status types.ActionStatus) error
}

// LogRepository persists the append-only log stream per action.
type LogRepository interface {
	AppendLog(ctx context.Context, actionID int64, data string) error
	FindLogsByActionID(ctx context.Context, actionID int64) ([]*types.LogEntry, error)
}

// Store is the controller's persistence boundary. The relational
// implementation lives in this package; everything above it depends only on
// this interface.
type Store interface {
	PipelineRepository
	ActionRepository
	LogRepository

	Close()
}
