package jobs

import (
	"context"
	"fmt"
	"time"

	"cinema-api/internal/data/repository"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Scheduler runs the background maintenance jobs. Currently one: a daily
// sweep that deletes expired and revoked refresh-token sessions.
type Scheduler struct {
	scheduler gocron.Scheduler
	sessions  repository.AuthSessionRepository
	log       *zap.Logger
}

func NewScheduler(sessions repository.AuthSessionRepository, log *zap.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	sched := &Scheduler{
		scheduler: s,
		sessions:  sessions,
		log:       log.With(zap.String("component", "scheduler")),
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(sched.cleanupAuthSessions),
	)
	if err != nil {
		return nil, fmt.Errorf("register session cleanup job: %w", err)
	}

	return sched, nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
	s.log.Info("Background scheduler started")
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) cleanupAuthSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.sessions.DeleteStale(ctx)
	if err != nil {
		s.log.Error("Auth session cleanup failed", zap.Error(err))
		return
	}

	s.log.Info("Auth session cleanup finished", zap.Int64("deleted", deleted))
}
