package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bartracker/bar-price-tracker/internal/models"
	"github.com/bartracker/bar-price-tracker/internal/scheduler"
	"github.com/bartracker/bar-price-tracker/internal/services/mocks"
)

func TestScheduler_RunOnce(t *testing.T) {

	t.Run("Success - Every user refreshed", func(t *testing.T) {
		// Arrange
		users := mocks.NewUserService(t)
		refresher := mocks.NewScraperService(t)
		s := scheduler.New(users, refresher, time.Hour)

		users.On("ListUsers", mock.Anything).Return([]*models.User{{ID: "u1"}, {ID: "u2"}}, nil).Once()
		refresher.On("RefreshPrices", mock.Anything, "u1").Return(nil, errors.New("boom")).Once()
		refresher.On("RefreshPrices", mock.Anything, "u2").Return(&models.RefreshSummary{UpdatedCount: 1, TotalConsidered: 1}, nil).Once()

		// Act
		s.RunOnce(t.Context())

		// Assert
		refresher.AssertNumberOfCalls(t, "RefreshPrices", 2)
	})

	t.Run("Failure - Listing users fails", func(t *testing.T) {
		// Arrange
		users := mocks.NewUserService(t)
		refresher := mocks.NewScraperService(t)
		s := scheduler.New(users, refresher, time.Hour)

		users.On("ListUsers", mock.Anything).Return(nil, errors.New("db down")).Once()

		// Act
		s.RunOnce(t.Context())

		// Assert
		refresher.AssertNotCalled(t, "RefreshPrices", mock.Anything, mock.Anything)
	})
}

func TestScheduler_Run(t *testing.T) {

	t.Run("Success - Stops on cancel", func(t *testing.T) {
		// Arrange
		users := mocks.NewUserService(t)
		s := scheduler.New(users, mocks.NewScraperService(t), time.Hour)
		ctx, cancel := context.WithCancel(t.Context())

		users.On("ListUsers", mock.Anything).Return([]*models.User{}, nil).Once().Run(func(mock.Arguments) { cancel() })

		done := make(chan struct{})

		// Act
		go func() {
			s.Run(ctx)
			close(done)
		}()

		// Assert
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			assert.Fail(t, "scheduler did not stop")
		}
	})
}
