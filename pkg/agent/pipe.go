package agent

import (
	"context"
	"sync"

	proto "github.com/Nayrode/sealci/api/proto"
)

// OutputPipe queues the response stream of one action. It is unbounded so
// the execution task never blocks on a slow stream writer: the producer is
// the action engine (and its per-command log readers), the single consumer
// is the gRPC response writer.
type OutputPipe struct {
	actionID uint32

	mu     sync.Mutex
	buf    []*proto.ActionResponseStream
	closed bool
	notify chan struct{}
}

// NewOutputPipe creates a pipe for the given action.
func NewOutputPipe(actionID uint32) *OutputPipe {
	return &OutputPipe{
		actionID: actionID,
		notify:   make(chan struct{}, 1),
	}
}

// OutputLog appends one response carrying a log line, its completion marker
// and an optional exit code. Appending to a closed pipe is a no-op.
func (p *OutputPipe) OutputLog(logLine string, completion proto.ActionStatus, exitCode *int32) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.buf = append(p.buf, &proto.ActionResponseStream{
		ActionId: p.actionID,
		Log:      logLine,
		Result: &proto.ActionResult{
			Completion: completion,
			ExitCode:   exitCode,
		},
	})
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// Close marks the end of the stream. Queued responses remain readable.
func (p *OutputPipe) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	select {
	case p.notify <- struct{}{}:
	default:
	}
}

// Next blocks until a response is available and returns it. It returns false
// once the pipe is closed and drained, or when ctx ends.
func (p *OutputPipe) Next(ctx context.Context) (*proto.ActionResponseStream, bool) {
	for {
		p.mu.Lock()
		if len(p.buf) > 0 {
			msg := p.buf[0]
			p.buf = p.buf[1:]
			p.mu.Unlock()
			return msg, true
		}
		closed := p.closed
		p.mu.Unlock()

		if closed {
			return nil, false
		}

		select {
		case <-p.notify:
		case <-ctx.Done():
			return nil, false
		}
	}
}
