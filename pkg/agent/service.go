package agent

import (
	"context"

	"github.com/Nayrode/sealci/pkg/events"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/Nayrode/sealci/pkg/runtime"
	"github.com/rs/zerolog"
)

// ActionService builds ready-to-run actions. It is a per-request factory:
// every ExecutionAction call gets a fresh container and a fresh Action, and
// nothing is retained once the action ends.
type ActionService struct {
	factory runtime.Factory
	broker  *events.StateBroker
	logger  zerolog.Logger
}

// NewActionService creates the factory over a container runtime and the
// agent's state broker.
func NewActionService(factory runtime.Factory, broker *events.StateBroker) *ActionService {
	return &ActionService{
		factory: factory,
		broker:  broker,
		logger:  log.WithComponent("agent"),
	}
}

// Create starts a container for the image, clones the repository into it and
// returns the prepared action. On any failure the container is removed
// before the error is returned.
func (s *ActionService) Create(ctx context.Context, image string, commands []string, pipe *OutputPipe, repoURL string, actionID uint32) (*Action, error) {
	container := s.factory.Create(image)
	if err := container.Start(ctx); err != nil {
		return nil, err
	}

	action := NewAction(actionID, container, commands, pipe, repoURL, s.broker)
	if err := action.SetupRepository(ctx); err != nil {
		if cleanupErr := action.Cleanup(ctx); cleanupErr != nil {
			s.logger.Error().Err(cleanupErr).Uint32("action_id", actionID).Msg("Cleanup after failed repository setup also failed")
		}
		return nil, err
	}

	return action, nil
}
