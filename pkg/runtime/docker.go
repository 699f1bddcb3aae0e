package runtime

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/docker/client"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nayrode/sealci/pkg/log"
)

// DockerFactory creates Docker-backed containers from a shared daemon client.
type DockerFactory struct {
	cli *client.Client
}

// NewDockerFactory connects to the Docker daemon and verifies it is
// reachable.
func NewDockerFactory(ctx context.Context) (*DockerFactory, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create docker client: %w", err)
	}

	if _, err := cli.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to reach docker daemon: %w", err)
	}

	return &DockerFactory{cli: cli}, nil
}

// Close closes the underlying daemon connection.
func (f *DockerFactory) Close() error {
	return f.cli.Close()
}

// Create returns an unstarted container for the given image.
func (f *DockerFactory) Create(imageRef string) Container {
	return &DockerContainer{
		name:   uuid.New().String(),
		image:  imageRef,
		cli:    f.cli,
		logger: log.WithComponent("runtime"),
	}
}

// DockerContainer runs commands inside one Docker container kept alive by an
// interactive /bin/sh.
type DockerContainer struct {
	name   string
	image  string
	id     string // daemon-assigned id, set once created
	cli    *client.Client
	logger zerolog.Logger
}

// Start pulls the image, creates the container with an interactive shell
// entrypoint and starts it. A container created but not started is removed
// before returning the error.
func (c *DockerContainer) Start(ctx context.Context) error {
	reader, err := c.cli.ImagePull(ctx, c.image, image.PullOptions{})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPullImage, c.image, err)
	}
	// The pull completes only once its progress stream is drained.
	if _, err := io.Copy(io.Discard, reader); err != nil {
		reader.Close()
		return fmt.Errorf("%w: %s: %v", ErrPullImage, c.image, err)
	}
	reader.Close()

	created, err := c.cli.ContainerCreate(ctx, &container.Config{
		Image:        c.image,
		Entrypoint:   strslice.StrSlice{"/bin/sh"},
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
		OpenStdin:    true,
		Tty:          true,
	}, nil, nil, nil, c.name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrContainerStart, err)
	}
	c.id = created.ID

	if err := c.cli.ContainerStart(ctx, c.id, container.StartOptions{}); err != nil {
		if removeErr := c.cli.ContainerRemove(ctx, c.id, container.RemoveOptions{Force: true}); removeErr != nil {
			c.logger.Error().Err(removeErr).Str("container", c.name).Msg("Failed to remove container after failed start")
		}
		c.id = ""
		return fmt.Errorf("%w: %v", ErrContainerStart, err)
	}

	return nil
}

// Exec starts a command in the container and returns its combined output
// stream plus a channel that delivers the exit code once the exec instance
// stops running.
func (c *DockerContainer) Exec(ctx context.Context, command string, workdir string) (*ExecResult, error) {
	exec, err := c.cli.ContainerExecCreate(ctx, c.id, container.ExecOptions{
		Cmd:          strslice.StrSlice{"/bin/sh", "-c", command},
		Tty:          true,
		AttachStdin:  true,
		AttachStdout: true,
		AttachStderr: true,
		WorkingDir:   workdir,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContainerExec, err)
	}

	attach, err := c.cli.ContainerExecAttach(ctx, exec.ID, container.ExecStartOptions{Tty: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContainerExec, err)
	}

	exitCh := make(chan int, 1)
	go c.pollExit(ctx, exec.ID, exitCh)

	return &ExecResult{
		Output:   &hijackedOutput{resp: attach},
		ExitCode: exitCh,
	}, nil
}

// pollExit inspects the exec instance every second until it stops running,
// then delivers the exit code. Inspect failures report exit code 1.
func (c *DockerContainer) pollExit(ctx context.Context, execID string, exitCh chan<- int) {
	defer close(exitCh)
	for {
		inspect, err := c.cli.ContainerExecInspect(ctx, execID)
		if err != nil {
			exitCh <- 1
			return
		}
		if !inspect.Running {
			exitCh <- inspect.ExitCode
			return
		}
		select {
		case <-time.After(execPollInterval):
		case <-ctx.Done():
			exitCh <- 1
			return
		}
	}
}

// Remove stops and removes the container. Calling it on a container that was
// never created is a no-op, so cleanup is safe on every exit path.
func (c *DockerContainer) Remove(ctx context.Context) error {
	if c.id == "" {
		return nil
	}
	if err := c.cli.ContainerStop(ctx, c.id, container.StopOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrContainerRemove, err)
	}
	if err := c.cli.ContainerRemove(ctx, c.id, container.RemoveOptions{}); err != nil {
		return fmt.Errorf("%w: %v", ErrContainerRemove, err)
	}
	c.id = ""
	return nil
}

// hijackedOutput adapts the hijacked attach connection to io.ReadCloser.
type hijackedOutput struct {
	resp types.HijackedResponse
}

func (h *hijackedOutput) Read(p []byte) (int, error) {
	return h.resp.Reader.Read(p)
}

func (h *hijackedOutput) Close() error {
	h.resp.Close()
	return nil
}
