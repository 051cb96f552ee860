package scheduler

import (
	"context"
	"sync"
	"time"

	"penulis/internal/logger"
	"penulis/internal/service"
)

// Scheduler periodically prunes stored articles older than the retention
// window. A zero retention disables pruning entirely.
type Scheduler struct {
	service   service.ArticleService
	retention time.Duration
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(svc service.ArticleService, retention time.Duration) *Scheduler {
	return &Scheduler{
		service:   svc,
		retention: retention,
		interval:  time.Hour,
	}
}

// Start launches the prune loop. Calling Start twice is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil || s.retention <= 0 {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)
	logger.Info("retention scheduler started", "module", "scheduler", "action", "start", "resource", "articles", "result", "ok", "retention", s.retention.String())
}

// Stop terminates the prune loop and waits for it to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.prune(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.prune(ctx)
		}
	}
}

func (s *Scheduler) prune(ctx context.Context) {
	deleted, err := s.service.PruneOlderThan(ctx, s.retention)
	if err != nil {
		logger.Error("prune failed", "module", "scheduler", "action", "delete", "resource", "articles", "result", "failed", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info("pruned old articles", "module", "scheduler", "action", "delete", "resource", "articles", "result", "ok", "count", deleted)
	}
}
