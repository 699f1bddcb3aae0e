package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Nayrode/sealci/pkg/client"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/Nayrode/sealci/pkg/metrics"
	"github.com/Nayrode/sealci/pkg/store"
	"github.com/rs/zerolog"
)

// App wires the controller together: the store, the scheduler client, the
// bridge and the pipeline service the HTTP façade consumes.
type App struct {
	cfg     Config
	store   store.Store
	client  *client.Client
	service *PipelineService
	logger  zerolog.Logger
}

// NewApp connects to the database and the scheduler (with the standard
// backoff policy) and assembles the service.
func NewApp(ctx context.Context, cfg Config) (*App, error) {
	st, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	schedulerClient, err := client.New(ctx, cfg.SchedulerAddr)
	if err != nil {
		st.Close()
		return nil, err
	}

	bridge := NewBridge(st, schedulerClient)

	return &App{
		cfg:     cfg,
		store:   st,
		client:  schedulerClient,
		service: NewPipelineService(st, bridge),
		logger:  log.WithComponent("controller"),
	}, nil
}

// Service returns the pipeline service for the admin surface.
func (a *App) Service() *PipelineService {
	return a.service
}

// Run serves the admin endpoints (metrics) until ctx ends, then releases the
// store and the scheduler channel.
func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.cfg.Host, a.cfg.Port)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	server := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	a.logger.Info().Str("addr", addr).Msg("Controller ready")

	var err error
	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err = ctx.Err()
	}

	a.client.Close()
	a.store.Close()
	return err
}
