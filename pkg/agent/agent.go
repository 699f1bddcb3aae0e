package agent

import (
	"context"
	"fmt"
	"net"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/events"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/Nayrode/sealci/pkg/runtime"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// Config holds agent configuration.
type Config struct {
	// SchedulerAddr is the scheduler's gRPC endpoint (host:port).
	SchedulerAddr string

	// Host is the local bind address for the action server.
	Host string

	// AdvertiseHost is the host the scheduler should use to reach this
	// agent.
	AdvertiseHost string

	// Port is both the bind port and the advertised port.
	Port uint32
}

// App wires the agent together: the container runtime, the action server and
// the scheduler session.
type App struct {
	cfg     Config
	monitor *HealthMonitor
	broker  *events.StateBroker
	server  *grpc.Server
	logger  zerolog.Logger
}

// New builds the agent over a container runtime. The runtime is injected so
// tests can run the full agent against a mock engine.
func New(cfg Config, factory runtime.Factory) *App {
	broker := events.NewStateBroker()
	actions := NewActionService(factory, broker)

	server := grpc.NewServer()
	proto.RegisterActionServiceServer(server, NewServer(actions))

	return &App{
		cfg:     cfg,
		monitor: NewHealthMonitor(),
		broker:  broker,
		server:  server,
		logger:  log.WithComponent("agent"),
	}
}

// StateBroker exposes the intra-process action state broker to other local
// listeners.
func (a *App) StateBroker() *events.StateBroker {
	return a.broker
}

// Run connects to the scheduler, registers, then serves actions and reports
// health until ctx ends or either task fails. The first error wins.
func (a *App) Run(ctx context.Context) error {
	session, err := ConnectScheduler(ctx, a.cfg.SchedulerAddr, a.cfg.AdvertiseHost, a.cfg.Port, a.monitor)
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.Register(ctx); err != nil {
		return fmt.Errorf("failed to register with scheduler: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Host, a.cfg.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	a.logger.Info().Str("addr", addr).Msg("Starting action server")

	errCh := make(chan error, 2)
	go func() {
		errCh <- a.server.Serve(lis)
	}()
	go func() {
		errCh <- session.ReportHealth(ctx)
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		err = ctx.Err()
	}

	a.server.GracefulStop()
	return err
}
