package agent

import (
	"context"

	"github.com/Nayrode/sealci/pkg/runtime"
)

// Step is one command of an action, bound to the directory it runs in.
type Step struct {
	// Command is the shell command executed in the container.
	Command string

	// workdir is the directory the command runs in, empty for the
	// container's default.
	workdir string

	container runtime.Container
}

func newStep(command, workdir string, container runtime.Container) Step {
	return Step{
		Command:   command,
		workdir:   workdir,
		container: container,
	}
}

// Execute runs the command in the container.
func (s Step) Execute(ctx context.Context) (*runtime.ExecResult, error) {
	return s.container.Exec(ctx, s.Command, s.workdir)
}
