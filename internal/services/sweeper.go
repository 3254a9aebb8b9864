package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper periodically expires completed tasks through the same
// DeleteCompletedBefore entry point a foreground caller would use.
// The store's atomicity resolves any race with foreground requests,
// so the sweeper needs no coordination of its own.
type Sweeper struct {
	logger    zerolog.Logger
	tasks     TaskService
	interval  time.Duration
	retention time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewSweeper(
	logger zerolog.Logger,
	tasks TaskService,
	interval time.Duration,
	retention time.Duration,
) *Sweeper {
	return &Sweeper{
		logger:    logger,
		tasks:     tasks,
		interval:  interval,
		retention: retention,
	}
}

// Start launches the sweep loop. It must be called at most once.
func (s *Sweeper) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info().
		Dur("interval", s.interval).
		Dur("retention", s.retention).
		Msg("started sweeper")
}

// Stop cancels the loop and waits for the in-flight sweep, if any,
// to finish.
func (s *Sweeper) Stop() {
	if s.cancel == nil {
		return
	}

	s.cancel()
	<-s.done
	s.logger.Info().Msg("stopped sweeper")
}

func (s *Sweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	threshold := time.Now().Add(-s.retention)

	count, err := s.tasks.DeleteCompletedBefore(ctx, threshold)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to sweep completed tasks")
		return
	}

	s.logger.Debug().
		Int("count", count).
		Msg("swept completed tasks")
}
