package runtime

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ExecCall records one Exec invocation on a MockContainer.
type ExecCall struct {
	Command string
	Workdir string
}

// MockContainer is a Container test double. It records every exec call and
// can be configured to fail or to report a fixed exit code.
type MockContainer struct {
	Image string

	// ShouldFail makes every Exec return a container-exec error.
	ShouldFail bool

	// StartErr, when set, is returned by Start.
	StartErr error

	// ExitCode is reported for every exec. Zero by default.
	ExitCode int

	// ExitCodes, when set, supplies exit codes per exec call in order;
	// calls past the end fall back to ExitCode.
	ExitCodes []int

	// Output, when non-empty, is served as the combined output of every
	// exec.
	Output string

	mu          sync.Mutex
	execCalls   []ExecCall
	removeCalls int
}

func (m *MockContainer) Start(ctx context.Context) error {
	return m.StartErr
}

func (m *MockContainer) Exec(ctx context.Context, command string, workdir string) (*ExecResult, error) {
	m.mu.Lock()
	call := len(m.execCalls)
	m.execCalls = append(m.execCalls, ExecCall{Command: command, Workdir: workdir})
	m.mu.Unlock()

	if m.ShouldFail {
		return nil, fmt.Errorf("%w: mock exec error", ErrContainerExec)
	}

	exitCode := m.ExitCode
	if call < len(m.ExitCodes) {
		exitCode = m.ExitCodes[call]
	}

	exitCh := make(chan int, 1)
	exitCh <- exitCode
	close(exitCh)

	return &ExecResult{
		Output:   io.NopCloser(strings.NewReader(m.Output)),
		ExitCode: exitCh,
	}, nil
}

func (m *MockContainer) Remove(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeCalls++
	return nil
}

// ExecCalls returns a copy of the recorded exec calls.
func (m *MockContainer) ExecCalls() []ExecCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ExecCall(nil), m.execCalls...)
}

// RemoveCalls returns how many times Remove was invoked.
func (m *MockContainer) RemoveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeCalls
}

// MockFactory hands out MockContainers and keeps every created container for
// later inspection.
type MockFactory struct {
	// Configuration copied onto every created container.
	ShouldFail bool
	StartErr   error
	ExitCode   int
	ExitCodes  []int
	Output     string

	mu      sync.Mutex
	created []*MockContainer
}

func (f *MockFactory) Create(image string) Container {
	c := &MockContainer{
		Image:      image,
		ShouldFail: f.ShouldFail,
		StartErr:   f.StartErr,
		ExitCode:   f.ExitCode,
		ExitCodes:  append([]int(nil), f.ExitCodes...),
		Output:     f.Output,
	}
	f.mu.Lock()
	f.created = append(f.created, c)
	f.mu.Unlock()
	return c
}

// Created returns every container this factory handed out.
func (f *MockFactory) Created() []*MockContainer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*MockContainer(nil), f.created...)
}
