/*
scheduler.go - Automated demo data refresh

PURPOSE:
  Periodically re-runs the demo seed so the shared demo account stays
  populated even if the backing store was wiped or started empty.
  The seed is idempotent (upsert by natural key), so a refresh on a
  healthy dataset is a no-op.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Skips entirely when the demo account is disabled
  - Stop() blocks until the goroutine has exited

USAGE:
  scheduler := NewDemoRefreshScheduler(handler)
  scheduler.Start()
  // ... later
  scheduler.Stop()

SEE ALSO:
  - demo.go: The seeding logic this re-runs
  - cmd/server/main.go: Where the scheduler is started
*/
package api

import (
	"context"
	"sync"
	"time"
)

// DemoRefreshScheduler re-seeds the demo account on a timer.
type DemoRefreshScheduler struct {
	Handler       *Handler
	CheckInterval time.Duration

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
}

func NewDemoRefreshScheduler(h *Handler) *DemoRefreshScheduler {
	return &DemoRefreshScheduler{
		Handler:       h,
		CheckInterval: time.Hour,
		stop:          make(chan struct{}),
	}
}

// Start launches the background refresh loop. No-op when the demo
// account is disabled.
func (s *DemoRefreshScheduler) Start() {
	if !s.Handler.demo.Enabled {
		return
	}

	s.ticker = time.NewTicker(s.CheckInterval)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		// Seed once at startup so the demo works immediately.
		s.refresh()

		for {
			select {
			case <-s.ticker.C:
				s.refresh()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop halts the loop and waits for it to finish.
func (s *DemoRefreshScheduler) Stop() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.stop)
	s.wg.Wait()
}

func (s *DemoRefreshScheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.Handler.seedDemo(ctx); err != nil {
		s.Handler.logger.Error("demo refresh failed", "error", err)
	}
}
