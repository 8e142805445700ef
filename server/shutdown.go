// server/shutdown.go
package server

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Stoppable is anything that can be shut down with a deadline
type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Closer is a resource released unconditionally during shutdown
type Closer interface {
	Close() error
}

// ShutdownManager handles graceful shutdown
type ShutdownManager struct {
	stoppable  Stoppable
	closers    []Closer
	waitGroup  sync.WaitGroup
	shutdownCh chan struct{}
	logger     *log.Logger
}

// NewShutdownManager creates a new shutdown manager. The closers are
// released after the stoppable has drained, in the order given.
func NewShutdownManager(stoppable Stoppable, logger *log.Logger, closers ...Closer) *ShutdownManager {
	return &ShutdownManager{
		stoppable:  stoppable,
		closers:    closers,
		shutdownCh: make(chan struct{}),
		logger:     logger,
	}
}

// HandleGracefulShutdown sets up signal handling and graceful shutdown
func (sm *ShutdownManager) HandleGracefulShutdown() error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-signals
	sm.logger.Printf("Received signal: %v", sig)

	// Notify about shutdown
	close(sm.shutdownCh)

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Track shutdown in wait group
	sm.waitGroup.Add(1)
	go func() {
		defer sm.waitGroup.Done()
		sm.performGracefulShutdown(ctx)
	}()

	// Wait for all shutdown tasks to complete
	shutdownComplete := make(chan struct{})
	go func() {
		sm.waitGroup.Wait()
		close(shutdownComplete)
	}()

	// Wait for shutdown or timeout
	select {
	case <-shutdownComplete:
		sm.logger.Println("Graceful shutdown completed")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timed out: %v", ctx.Err())
	}
}

// performGracefulShutdown handles the actual shutdown sequence
func (sm *ShutdownManager) performGracefulShutdown(ctx context.Context) {
	// Stop accepting new connections
	if sm.stoppable != nil {
		if err := sm.stoppable.Shutdown(ctx); err != nil {
			sm.logger.Printf("Error during shutdown: %v", err)
		}
	}

	// Release remaining resources
	for _, closer := range sm.closers {
		if err := closer.Close(); err != nil {
			sm.logger.Printf("Error closing resource: %v", err)
		}
	}
}

// IsShuttingDown returns true if shutdown has been initiated
func (sm *ShutdownManager) IsShuttingDown() bool {
	select {
	case <-sm.shutdownCh:
		return true
	default:
		return false
	}
}

// WaitForShutdown blocks until shutdown is complete
func (sm *ShutdownManager) WaitForShutdown() {
	sm.waitGroup.Wait()
}
