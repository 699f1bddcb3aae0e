package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/Nayrode/sealci/pkg/metrics"
	"github.com/Nayrode/sealci/pkg/pool"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Config holds scheduler configuration.
type Config struct {
	// Addr is the bind address of the gRPC server (host:port).
	Addr string
}

// Server implements both scheduler-side gRPC services: Agent (registration
// and health ingest) and Controller (action dispatch). The agent pool is the
// only shared state; one mutex inside it guards everything.
type Server struct {
	proto.UnimplementedAgentServer
	proto.UnimplementedControllerServer

	pool   *pool.Pool
	grpc   *grpc.Server
	logger zerolog.Logger
}

// NewServer creates a scheduler over the given agent pool. The pool is lost
// when the scheduler dies; agents re-register on reconnect.
func NewServer(agentPool *pool.Pool) *Server {
	s := &Server{
		pool:   agentPool,
		grpc:   grpc.NewServer(),
		logger: log.WithComponent("scheduler"),
	}
	proto.RegisterAgentServer(s.grpc, s)
	proto.RegisterControllerServer(s.grpc, s)
	return s
}

// Start serves gRPC on addr until Stop is called.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.logger.Info().Str("addr", addr).Msg("Starting gRPC server")
	return s.grpc.Serve(lis)
}

// Stop gracefully stops the gRPC server.
func (s *Server) Stop() {
	s.grpc.GracefulStop()
}

// Register registers the scheduler services on an external gRPC server.
// Used by tests that bring their own listener.
func (s *Server) Register(registrar grpc.ServiceRegistrar) {
	proto.RegisterAgentServer(registrar, s)
	proto.RegisterControllerServer(registrar, s)
}

// RegisterAgent validates the announcement, inserts the agent into the pool
// and returns its assigned id.
func (s *Server) RegisterAgent(ctx context.Context, req *proto.RegisterAgentRequest) (*proto.RegisterAgentResponse, error) {
	health := req.GetHealth()
	if health == nil {
		s.logger.Error().Msg("Health status is missing in the request")
		return nil, status.Error(codes.InvalidArgument, "Health status is missing")
	}

	hostname := req.GetHostname()
	if hostname == nil {
		s.logger.Error().Msg("Hostname is missing in the request")
		return nil, status.Error(codes.InvalidArgument, "Hostname is missing")
	}

	id := s.pool.Register(hostname.GetHost(), hostname.GetPort(), health)
	metrics.AgentsRegistered.Set(float64(s.pool.Len()))

	s.logger.Info().
		Str("host", hostname.GetHost()).
		Uint32("port", hostname.GetPort()).
		Uint32("agent_id", id).
		Msg("Agent registered")

	return &proto.RegisterAgentResponse{Id: id}, nil
}

// ReportHealthStatus consumes an agent's health stream, updating pool scores
// sample by sample. A malformed sample or one for an unknown agent is
// skipped, not a stream error; the acknowledgement comes when the agent ends
// the stream.
func (s *Server) ReportHealthStatus(stream grpc.ClientStreamingServer[proto.HealthStatus, proto.Empty]) error {
	for {
		sample, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return stream.SendAndClose(&proto.Empty{})
		}
		if err != nil {
			s.logger.Error().Err(err).Msg("Error receiving health status")
			return status.Error(codes.Internal, "Error receiving health status")
		}

		health := sample.GetHealth()
		if health == nil {
			s.logger.Error().Uint32("agent_id", sample.GetAgentId()).Msg("Health field is missing, skipping sample")
			metrics.HealthSamplesTotal.WithLabelValues("skipped").Inc()
			continue
		}

		s.logger.Debug().
			Uint32("agent_id", sample.GetAgentId()).
			Uint32("cpu_avail", health.GetCpuAvail()).
			Uint64("memory_avail", health.GetMemoryAvail()).
			Msg("Received health status")

		if !s.pool.UpdateHealth(sample.GetAgentId(), health) {
			metrics.HealthSamplesTotal.WithLabelValues("skipped").Inc()
			continue
		}
		metrics.HealthSamplesTotal.WithLabelValues("applied").Inc()
	}
}

// ScheduleAction picks the least-loaded agent and relays the action's
// response stream back to the controller unchanged. No retry, no
// resubmission: a failure mid-stream surfaces to the caller, and the pool
// score only moves when the agent's next health report lands.
func (s *Server) ScheduleAction(req *proto.ActionRequest, stream grpc.ServerStreamingServer[proto.ActionResponse]) error {
	best, ok := s.pool.PeekBest()
	if !ok {
		metrics.DispatchesTotal.WithLabelValues("no_agents").Inc()
		return status.Error(codes.FailedPrecondition, "no agents available")
	}

	addr, err := best.Addr()
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	s.logger.Info().
		Uint32("action_id", req.GetActionId()).
		Uint32("agent_id", best.ID).
		Str("agent_addr", addr).
		Msg("Dispatching action")

	timer := metrics.NewTimer()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		metrics.DispatchesTotal.WithLabelValues("agent_unreachable").Inc()
		return status.Error(codes.Internal, err.Error())
	}
	defer conn.Close()

	agentStream, err := proto.NewActionServiceClient(conn).ExecutionAction(stream.Context(), req)
	if err != nil {
		metrics.DispatchesTotal.WithLabelValues("agent_unreachable").Inc()
		return status.Error(codes.Internal, err.Error())
	}

	for {
		in, err := agentStream.Recv()
		if errors.Is(err, io.EOF) {
			metrics.DispatchesTotal.WithLabelValues("relayed").Inc()
			timer.ObserveDuration(metrics.DispatchLatency)
			return nil
		}
		if err != nil {
			s.logger.Error().Err(err).Uint32("action_id", req.GetActionId()).Msg("Agent stream failed")
			metrics.DispatchesTotal.WithLabelValues("stream_error").Inc()
			return err
		}

		err = stream.Send(&proto.ActionResponse{
			ActionId: in.GetActionId(),
			Log:      in.GetLog(),
			Result:   in.GetResult(),
		})
		if err != nil {
			metrics.DispatchesTotal.WithLabelValues("stream_error").Inc()
			return err
		}
	}
}
