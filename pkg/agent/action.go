package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/events"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/Nayrode/sealci/pkg/runtime"
	"github.com/Nayrode/sealci/pkg/types"
	"github.com/rs/zerolog"
)

// ExitError reports a command that finished with a non-zero exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("step exited with code %d", e.Code)
}

// Action executes one action request inside its own container: clone the
// repository, run the commands in order, stream their output, and remove the
// container on every exit path.
type Action struct {
	ID            uint32
	RepositoryURL string

	container runtime.Container
	steps     []Step
	pipe      *OutputPipe
	broker    *events.StateBroker
	logger    zerolog.Logger

	cleanupOnce sync.Once
	cleanupErr  error
}

// NewAction builds an action over an already-started container. Every
// command runs in /<id>, the directory the repository is cloned into.
func NewAction(id uint32, container runtime.Container, commands []string, pipe *OutputPipe, repositoryURL string, broker *events.StateBroker) *Action {
	workdir := fmt.Sprintf("/%d", id)
	steps := make([]Step, 0, len(commands))
	for _, command := range commands {
		steps = append(steps, newStep(command, workdir, container))
	}

	return &Action{
		ID:            id,
		RepositoryURL: repositoryURL,
		container:     container,
		steps:         steps,
		pipe:          pipe,
		broker:        broker,
		logger:        log.WithActionID(id),
	}
}

// SetupRepository clones the repository into a directory named after the
// action id. The clone runs in the container's default directory.
func (a *Action) SetupRepository(ctx context.Context) error {
	cloneCommand := fmt.Sprintf("git clone --depth 1 %s %d", a.RepositoryURL, a.ID)
	result, err := a.container.Exec(ctx, cloneCommand, "")
	if err != nil {
		return err
	}

	go drain(result.Output)
	if exitCode := <-result.ExitCode; exitCode != 0 {
		return fmt.Errorf("%w: git clone exited with code %d", runtime.ErrContainerExec, exitCode)
	}
	return nil
}

// Execute runs the steps in order, forwarding each command's output to the
// pipe as completion=2 log entries. The first non-zero exit emits a terminal
// completion=3 entry carrying the exit code and stops the action. The
// container is removed before Execute returns, on every path.
func (a *Action) Execute(ctx context.Context) error {
	a.publish(events.StateEvent{ActionID: a.ID, State: types.ActionStateInProgress})

	for _, step := range a.steps {
		result, err := step.Execute(ctx)
		if err != nil {
			a.logger.Error().Err(err).Str("command", step.Command).Msg("Step execution failed")
			if cleanupErr := a.Cleanup(ctx); cleanupErr != nil {
				a.logger.Error().Err(cleanupErr).Msg("Cleanup after failed step also failed")
			}
			a.publish(events.StateEvent{ActionID: a.ID, State: types.ActionStateFailed})
			a.pipe.OutputLog(err.Error(), proto.ActionStatus_ACTION_STATUS_ERROR, nil)
			return err
		}

		a.logger.Debug().Str("command", step.Command).Msg("Executing command")
		a.pipe.OutputLog(step.Command, proto.ActionStatus_ACTION_STATUS_COMPLETED, nil)

		readerDone := make(chan struct{})
		go func(output io.ReadCloser) {
			defer close(readerDone)
			scanner := bufio.NewScanner(output)
			for scanner.Scan() {
				a.pipe.OutputLog(scanner.Text(), proto.ActionStatus_ACTION_STATUS_COMPLETED, nil)
			}
		}(result.Output)

		exitCode := <-result.ExitCode
		// The output stream ends when the exec instance does; waiting here
		// keeps every log line ahead of the terminal marker.
		<-readerDone
		result.Output.Close()

		if exitCode != 0 {
			if cleanupErr := a.Cleanup(ctx); cleanupErr != nil {
				a.logger.Error().Err(cleanupErr).Msg("Cleanup after non-zero exit also failed")
			}
			a.publish(events.StateEvent{ActionID: a.ID, State: types.ActionStateFailed})
			code := int32(exitCode)
			a.pipe.OutputLog("Action failed", proto.ActionStatus_ACTION_STATUS_ERROR, &code)
			return &ExitError{Code: exitCode}
		}
	}

	if err := a.Cleanup(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Cleanup after completed action failed")
	}
	a.publish(events.StateEvent{ActionID: a.ID, State: types.ActionStateCompleted})
	return nil
}

// Cleanup stops and removes the container. It runs at most once; later calls
// return the first result, so every exit path can call it safely.
func (a *Action) Cleanup(ctx context.Context) error {
	a.cleanupOnce.Do(func() {
		a.cleanupErr = a.container.Remove(ctx)
	})
	return a.cleanupErr
}

func (a *Action) publish(event events.StateEvent) {
	if a.broker != nil {
		a.broker.Publish(event)
	}
}

func drain(r io.ReadCloser) {
	_, _ = io.Copy(io.Discard, r)
	r.Close()
}
