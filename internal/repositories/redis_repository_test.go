package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartracker/bar-price-tracker/internal/config"
	repository "github.com/bartracker/bar-price-tracker/internal/repositories"
)

func anyArgs(_, _ []interface{}) error {
	return nil
}

func TestCheckLoginRateLimit(t *testing.T) {
	ctx := t.Context()
	cfg := &config.RateConfig{MaxAttempts: 5, WindowSize: 15 * time.Second}
	key := "login_attempts:sam@example.com"

	expectPipeline := func(mock redismock.ClientMock, count int64) {
		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(key, "0", "0").SetVal(0)
		mock.CustomMatch(anyArgs).ExpectZAdd(key, redis.Z{}).SetVal(1)
		mock.ExpectZCard(key).SetVal(count)
		mock.ExpectExpire(key, cfg.WindowSize).SetVal(true)
	}

	t.Run("Success - under the limit", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg)
		expectPipeline(mock, 2)

		// Act
		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(ctx, "sam@example.com")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 3, remaining)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - limit reached", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg)
		expectPipeline(mock, 5)

		oldest := time.Now().Unix() - 5
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).
			SetVal([]redis.Z{{Score: float64(oldest), Member: oldest}})

		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(ctx, "sam@example.com")

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		assert.InDelta(t, 10, retryAfter, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - redis unavailable", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg)
		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(key, "0", "0").SetErr(errors.New("connection refused"))

		allowed, _, _, err := repo.CheckLoginRateLimit(ctx, "sam@example.com")

		require.Error(t, err)
		assert.False(t, allowed)
	})
}
