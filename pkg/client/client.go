package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	// Exponential backoff policy for the initial connection to a peer.
	backoffBase    = 2 * time.Second
	backoffCap     = 64 * time.Second
	maxAttempts    = 10
	connectTimeout = 5 * time.Second
)

// Dial connects to a SealCI peer with exponential backoff: 2s base, doubling
// per failure, capped at 64s, up to 10 attempts. Exhausting the attempts is
// fatal for the caller.
func Dial(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	logger := log.WithComponent("client")
	delay := backoffBase

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		conn, err := dialOnce(ctx, addr)
		if err == nil {
			return conn, nil
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}
		logger.Error().Err(err).Str("addr", addr).Dur("retry_in", delay).Msg("Failed to connect, retrying")

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		delay *= 2
		if delay > backoffCap {
			delay = backoffCap
		}
	}

	return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", addr, maxAttempts, lastErr)
}

// dialOnce creates a channel and waits for it to become ready.
func dialOnce(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create channel to %s: %w", addr, err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return conn, nil
		}
		if !conn.WaitForStateChange(waitCtx, state) {
			conn.Close()
			return nil, fmt.Errorf("connection to %s did not become ready: %w", addr, waitCtx.Err())
		}
	}
}

// Client is the controller's handle on the scheduler. One instance holds one
// long-lived channel; opening a stream is serialized by a mutex, consuming
// it is not.
type Client struct {
	mu     sync.Mutex
	conn   *grpc.ClientConn
	client proto.ControllerClient
}

// New dials the scheduler with the standard backoff policy and wraps the
// resulting channel.
func New(ctx context.Context, addr string) (*Client, error) {
	conn, err := Dial(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &Client{
		conn:   conn,
		client: proto.NewControllerClient(conn),
	}, nil
}

// ScheduleAction opens a dispatch stream for one action. The mutex is held
// only while the stream is opened, never for its lifetime.
func (c *Client) ScheduleAction(ctx context.Context, req *proto.ActionRequest) (grpc.ServerStreamingClient[proto.ActionResponse], error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client.ScheduleAction(ctx, req)
}

// Close tears down the underlying channel.
func (c *Client) Close() error {
	return c.conn.Close()
}
