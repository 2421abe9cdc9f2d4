// Package lifecycle coordinates subsystem startup and graceful shutdown.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Coordinator runs registered startup hooks concurrently, tracks readiness,
// and drains shutdown hooks within a deadline.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	startup  []func(context.Context)
	shutdown []func(context.Context)
	ready    bool
}

// New creates a Coordinator with a cancellable root context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the coordinator's root context, cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup registers a hook to run concurrently when Start is called.
func (c *Coordinator) OnStartup(fn func(context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startup = append(c.startup, fn)
}

// OnShutdown registers a hook to run concurrently during Shutdown.
// The hook receives a context that expires at the shutdown deadline.
func (c *Coordinator) OnShutdown(fn func(context.Context)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shutdown = append(c.shutdown, fn)
}

// Start runs all registered startup hooks concurrently and blocks until
// they complete, then marks the coordinator ready.
func (c *Coordinator) Start() {
	c.mu.Lock()
	hooks := c.startup
	c.mu.Unlock()

	var wg sync.WaitGroup
	for _, fn := range hooks {
		wg.Go(func() { fn(c.ctx) })
	}
	wg.Wait()

	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
}

// Ready reports whether all startup hooks have completed.
func (c *Coordinator) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Shutdown cancels the root context and runs shutdown hooks concurrently,
// waiting up to timeout for them to drain.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	drainCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c.mu.Lock()
	hooks := c.shutdown
	c.mu.Unlock()

	var wg sync.WaitGroup
	for _, fn := range hooks {
		wg.Go(func() { fn(drainCtx) })
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-drainCtx.Done():
		return fmt.Errorf("shutdown incomplete after %v", timeout)
	}
}
