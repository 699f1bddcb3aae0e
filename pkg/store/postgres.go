package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nayrode/sealci/pkg/types"
)

// PostgresStore implements Store over a PostgreSQL connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to the database and verifies the connection.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) CreatePipeline(ctx context.Context, repositoryURL, name string) (*types.Pipeline, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO pipelines (repository_url, name) VALUES ($1, $2) RETURNING id, repository_url, name`,
		repositoryURL, name,
	)

	var pipeline types.Pipeline
	if err := row.Scan(&pipeline.ID, &pipeline.RepositoryURL, &pipeline.Name); err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}
	return &pipeline, nil
}

func (s *PostgresStore) FindPipelines(ctx context.Context) ([]*types.Pipeline, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, repository_url, name FROM pipelines ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pipelines: %w", err)
	}
	defer rows.Close()

	var pipelines []*types.Pipeline
	for rows.Next() {
		var pipeline types.Pipeline
		if err := rows.Scan(&pipeline.ID, &pipeline.RepositoryURL, &pipeline.Name); err != nil {
			return nil, fmt.Errorf("failed to scan pipeline: %w", err)
		}
		pipelines = append(pipelines, &pipeline)
	}
	return pipelines, rows.Err()
}

func (s *PostgresStore) FindPipelineByID(ctx context.Context, id int64) (*types.Pipeline, error) {
	row := s.pool.QueryRow(ctx, `SELECT id, repository_url, name FROM pipelines WHERE id = $1`, id)

	var pipeline types.Pipeline
	err := row.Scan(&pipeline.ID, &pipeline.RepositoryURL, &pipeline.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pipeline %d: %w", id, err)
	}
	return &pipeline, nil
}

func (s *PostgresStore) CreateAction(ctx context.Context, pipelineID int64, name, containerURI string, actionType types.ActionType, status types.ActionStatus, commands []string) (*types.Action, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO actions (pipeline_id, name, container_uri, type, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		pipelineID, name, containerURI, string(actionType), string(status),
	)

	action := &types.Action{
		PipelineID:   pipelineID,
		Name:         name,
		Type:         actionType,
		ContainerURI: containerURI,
		Status:       status,
		Commands:     commands,
	}
	if err := row.Scan(&action.ID); err != nil {
		return nil, fmt.Errorf("failed to create action: %w", err)
	}

	for _, command := range commands {
		if _, err := tx.Exec(ctx, `INSERT INTO commands (action_id, command) VALUES ($1, $2)`, action.ID, command); err != nil {
			return nil, fmt.Errorf("failed to create command: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit action: %w", err)
	}
	return action, nil
}

func (s *PostgresStore) FindActionsByPipelineID(ctx context.Context, pipelineID int64) ([]*types.Action, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT a.id, a.pipeline_id, a.name, a.container_uri, a.type, a.status, c.command
		 FROM actions a
		 LEFT JOIN commands c ON a.id = c.action_id
		 WHERE a.pipeline_id = $1
		 ORDER BY a.id, c.id`,
		pipelineID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	defer rows.Close()

	var actions []*types.Action
	byID := make(map[int64]*types.Action)
	for rows.Next() {
		var (
			id, pid                    int64
			name, containerURI, status string
			actionType                 string
			command                    *string
		)
		if err := rows.Scan(&id, &pid, &name, &containerURI, &actionType, &status, &command); err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}

		action, ok := byID[id]
		if !ok {
			parsedStatus, err := types.ParseActionStatus(status)
			if err != nil {
				return nil, fmt.Errorf("action %d: %w", id, err)
			}
			parsedType, err := types.ParseActionType(actionType)
			if err != nil {
				return nil, fmt.Errorf("action %d: %w", id, err)
			}
			action = &types.Action{
				ID:           id,
				PipelineID:   pid,
				Name:         name,
				Type:         parsedType,
				ContainerURI: containerURI,
				Status:       parsedStatus,
			}
			byID[id] = action
			actions = append(actions, action)
		}
		if command != nil {
			action.Commands = append(action.Commands, *command)
		}
	}
	return actions, rows.Err()
}

func (s *PostgresStore) UpdateActionStatus(ctx context.Context, actionID int64, status types.ActionStatus) error {
	tag, err := s.pool.Exec(ctx, `UPDATE actions SET status = $1 WHERE id = $2`, string(status), actionID)
	if err != nil {
		return fmt.Errorf("failed to update action %d: %w", actionID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) AppendLog(ctx context.Context, actionID int64, data string) error {
	if _, err := s.pool.Exec(ctx, `INSERT INTO logs (action_id, data) VALUES ($1, $2)`, actionID, data); err != nil {
		return fmt.Errorf("failed to append log for action %d: %w", actionID, err)
	}
	return nil
}

func (s *PostgresStore) FindLogsByActionID(ctx context.Context, actionID int64) ([]*types.LogEntry, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, action_id, data FROM logs WHERE action_id = $1 ORDER BY id`, actionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var logs []*types.LogEntry
	for rows.Next() {
		var entry types.LogEntry
		if err := rows.Scan(&entry.ID, &entry.ActionID, &entry.Data); err != nil {
			return nil, fmt.Errorf("failed to scan log: %w", err)
		}
		logs = append(logs, &entry)
	}
	return logs, rows.Err()
}
