// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/id01t/bookforge/internal/history"
)

// CheckpointScheduler periodically truncates the history database WAL so the
// main file stays current between restarts.
type CheckpointScheduler struct {
	store    *history.Store
	schedule string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewCheckpointScheduler(store *history.Store, schedule string) *CheckpointScheduler {
	return &CheckpointScheduler{
		store:    store,
		schedule: schedule,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *CheckpointScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runCheckpoint()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule checkpoint job with '%s': %w", s.schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Checkpoint scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *CheckpointScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Checkpoint scheduler: stopped")
}

// RunNow triggers an immediate checkpoint.
func (s *CheckpointScheduler) RunNow() {
	go s.runCheckpoint()
}

// IsRunning returns whether the scheduler is active.
func (s *CheckpointScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next checkpoint will occur.
func (s *CheckpointScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *CheckpointScheduler) runCheckpoint() {
	startTime := time.Now()

	if err := s.store.Checkpoint(); err != nil {
		log.Printf("Checkpoint: failed: %v", err)
		return
	}

	count, err := s.store.Count()
	if err != nil {
		log.Printf("Checkpoint: completed in %v, entry count unavailable: %v", time.Since(startTime), err)
		return
	}

	log.Printf("Checkpoint: completed in %v, %d history entries", time.Since(startTime), count)
}
