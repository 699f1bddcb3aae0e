package runtime

import (
	"context"
	"errors"
	"io"
	"time"
)

// Sentinel errors for container operations. Callers match with errors.Is to
// map failures onto the service error surface.
var (
	ErrPullImage       = errors.New("pull image failed")
	ErrContainerStart  = errors.New("container start failed")
	ErrContainerExec   = errors.New("container exec failed")
	ErrContainerRemove = errors.New("container remove failed")
)

// ExecResult is one running command inside a container: a line-oriented
// combined stdout/stderr stream plus a channel that delivers the exit code
// exactly once.
type ExecResult struct {
	Output   io.ReadCloser
	ExitCode <-chan int
}

// Container is one ephemeral execution environment. A container is owned by
// exactly one action and must be removed on every exit path.
type Container interface {
	// Start pulls the image if needed, creates the container and starts it.
	// No partial resource survives a failed Start.
	Start(ctx context.Context) error

	// Exec runs a shell command inside the container. workdir may be empty.
	Exec(ctx context.Context, command string, workdir string) (*ExecResult, error)

	// Remove stops and removes the container. Safe to call when Start never
	// succeeded.
	Remove(ctx context.Context) error
}

// Factory creates containers for a given image. The agent holds one factory
// for the life of the process and asks it for a fresh container per action.
type Factory interface {
	Create(image string) Container
}

// execPollInterval is how often a running exec instance is inspected for
// its exit code.
const execPollInterval = time.Second
