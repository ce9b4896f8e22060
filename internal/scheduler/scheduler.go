package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/bartracker/bar-price-tracker/internal/models"
)

const defaultInterval = 6 * time.Hour

type UserLister interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

type Refresher interface {
	RefreshPrices(ctx context.Context, userID string) (*models.RefreshSummary, error)
}

type Scheduler struct {
	users     UserLister
	refresher Refresher
	interval  time.Duration
	logger    *slog.Logger
}

func New(users UserLister, refresher Refresher, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}

	return &Scheduler{
		users:     users,
		refresher: refresher,
		interval:  interval,
		logger:    slog.Default().With(slog.String("component", "scheduler")),
	}
}

// Run refreshes every user's prices once, then on each tick, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Scheduler started", slog.Duration("interval", s.interval))

	s.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce refreshes users one after another. A failing user is logged and skipped.
func (s *Scheduler) RunOnce(ctx context.Context) {

	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", slog.Any("error", err))
		return
	}

	for _, user := range users {
		if ctx.Err() != nil {
			return
		}

		summary, err := s.refresher.RefreshPrices(ctx, user.ID)
		if err != nil {
			s.logger.Error("Price refresh failed", slog.String("userId", user.ID), slog.Any("error", err))
			continue
		}

		s.logger.Info("Price refresh done",
			slog.String("userId", user.ID),
			slog.Int("updated", summary.UpdatedCount),
			slog.Int("considered", summary.TotalConsidered),
			slog.Int("failed", len(summary.Errors)))
	}
}
