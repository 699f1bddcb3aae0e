package store

import (
	"context"
	"sort"
	"sync"

	"github.com/Nayrode/sealci/pkg/types"
)

// MemoryStore is an in-memory Store used by tests and storeless
// development. It mirrors the relational implementation's semantics,
// including ascending-id listing order.
type MemoryStore struct {
	mu sync.Mutex

	pipelines map[int64]*types.Pipeline
	actions   map[int64]*types.Action
	logs      map[int64][]*types.LogEntry

	nextPipelineID int64
	nextActionID   int64
	nextLogID      int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pipelines: make(map[int64]*types.Pipeline),
		actions:   make(map[int64]*types.Action),
		logs:      make(map[int64][]*types.LogEntry),
	}
}

func (s *MemoryStore) Close() {}

func (s *MemoryStore) CreatePipeline(ctx context.Context, repositoryURL, name string) (*types.Pipeline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPipelineID++
	pipeline := &types.Pipeline{
		ID:            s.nextPipelineID,
		Name:          name,
		RepositoryURL: repositoryURL,
	}
	s.pipelines[pipeline.ID] = pipeline
	return clonePipeline(pipeline), nil
}

func (s *MemoryStore) FindPipelines(ctx context.Context) ([]*types.Pipeline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pipelines := make([]*types.Pipeline, 0, len(s.pipelines))
	for _, pipeline := range s.pipelines {
		pipelines = append(pipelines, clonePipeline(pipeline))
	}
	sort.Slice(pipelines, func(i, j int) bool { return pipelines[i].ID < pipelines[j].ID })
	return pipelines, nil
}

func (s *MemoryStore) FindPipelineByID(ctx context.Context, id int64) (*types.Pipeline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pipeline, ok := s.pipelines[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clonePipeline(pipeline), nil
}

func (s *MemoryStore) CreateAction(ctx context.Context, pipelineID int64, name, containerURI string, actionType types.ActionType, status types.ActionStatus, commands []string) (*types.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pipelines[pipelineID]; !ok {
		return nil, ErrNotFound
	}

	s.nextActionID++
	action := &types.Action{
		ID:           s.nextActionID,
		PipelineID:   pipelineID,
		Name:         name,
		Type:         actionType,
		ContainerURI: containerURI,
		Status:       status,
		Commands:     append([]string(nil), commands...),
	}
	s.actions[action.ID] = action
	return cloneAction(action), nil
}

func (s *MemoryStore) FindActionsByPipelineID(ctx context.Context, pipelineID int64) ([]*types.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var actions []*types.Action
	for _, action := range s.actions {
		if action.PipelineID == pipelineID {
			actions = append(actions, cloneAction(action))
		}
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i].ID < actions[j].ID })
	return actions, nil
}

func (s *MemoryStore) UpdateActionStatus(ctx context.Context, actionID int64, status types.ActionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := s.actions[actionID]
	if !ok {
		return ErrNotFound
	}
	action.Status = status
	return nil
}

func (s *MemoryStore) AppendLog(ctx context.Context, actionID int64, data string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextLogID++
	s.logs[actionID] = append(s.logs[actionID], &types.LogEntry{
		ID:       s.nextLogID,
		ActionID: actionID,
		Data:     data,
	})
	return nil
}

func (s *MemoryStore) FindLogsByActionID(ctx context.Context, actionID int64) ([]*types.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := make([]*types.LogEntry, 0, len(s.logs[actionID]))
	for _, entry := range s.logs[actionID] {
		copied := *entry
		logs = append(logs, &copied)
	}
	return logs, nil
}

func clonePipeline(pipeline *types.Pipeline) *types.Pipeline {
	copied := *pipeline
	copied.Actions = nil
	return &copied
}

func cloneAction(action *types.Action) *types.Action {
	copied := *action
	copied.Commands = append([]string(nil), action.Commands...)
	copied.Logs = nil
	return &copied
}
