package agent

import (
	"context"
	"errors"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/client"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// ErrNotRegistered is returned when health reporting starts before the
// agent registered with the scheduler.
var ErrNotRegistered = errors.New("agent is not registered with the scheduler")

// SchedulerSession is the agent's side of its relationship with the
// scheduler: one registration, then a long-lived health stream.
type SchedulerSession struct {
	conn    *grpc.ClientConn
	client  proto.AgentClient
	monitor *HealthMonitor

	advertiseHost string
	port          uint32

	agentID    uint32
	registered bool

	logger zerolog.Logger
}

// ConnectScheduler dials the scheduler with the standard backoff policy.
// advertiseHost and port are what the scheduler will hand to dispatchers to
// reach this agent.
func ConnectScheduler(ctx context.Context, schedulerAddr, advertiseHost string, port uint32, monitor *HealthMonitor) (*SchedulerSession, error) {
	conn, err := client.Dial(ctx, schedulerAddr)
	if err != nil {
		return nil, err
	}

	return &SchedulerSession{
		conn:          conn,
		client:        proto.NewAgentClient(conn),
		monitor:       monitor,
		advertiseHost: advertiseHost,
		port:          port,
		logger:        log.WithComponent("agent"),
	}, nil
}

// Register samples the host once and announces this agent to the scheduler,
// keeping the assigned id for the health stream.
func (s *SchedulerSession) Register(ctx context.Context) error {
	health, err := s.monitor.Sample(ctx)
	if err != nil {
		return err
	}

	resp, err := s.client.RegisterAgent(ctx, &proto.RegisterAgentRequest{
		Health: health,
		Hostname: &proto.Hostname{
			Host: s.advertiseHost,
			Port: s.port,
		},
	})
	if err != nil {
		return err
	}

	s.agentID = resp.GetId()
	s.registered = true
	s.logger.Info().Uint32("agent_id", s.agentID).Msg("Registered with scheduler")
	return nil
}

// AgentID returns the id the scheduler assigned at registration.
func (s *SchedulerSession) AgentID() uint32 {
	return s.agentID
}

// ReportHealth forwards significant health changes to the scheduler until
// ctx ends or the stream breaks. On a broken stream the caller is expected
// to reconnect and re-register.
func (s *SchedulerSession) ReportHealth(ctx context.Context) error {
	if !s.registered {
		return ErrNotRegistered
	}

	stream, err := s.client.ReportHealthStatus(ctx)
	if err != nil {
		return err
	}

	for health := range s.monitor.Stream(ctx) {
		err := stream.Send(&proto.HealthStatus{
			AgentId: s.agentID,
			Health:  health,
		})
		if err != nil {
			return err
		}
		s.logger.Debug().
			Uint32("cpu_avail", health.GetCpuAvail()).
			Uint64("memory_avail", health.GetMemoryAvail()).
			Msg("Reported health change")
	}

	// The monitor only stops when ctx ends; close the stream politely.
	if _, err := stream.CloseAndRecv(); err != nil {
		s.logger.Debug().Err(err).Msg("Health stream closed")
	}
	return ctx.Err()
}

// Close tears down the channel to the scheduler.
func (s *SchedulerSession) Close() error {
	return s.conn.Close()
}
