package cron

import (
	"context"
	"testing"
	"time"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/data/repository"
	"jua-kazi/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSweepSessions(t *testing.T) {
	db, err := database.InitDB(zap.NewNop())
	require.NoError(t, err)
	defer db.Close()
	repo := repository.NewRepository(db, zap.NewNop())
	ctx := context.Background()

	expired := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(-time.Minute),
	}
	live := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Session.Create(ctx, expired))
	require.NoError(t, repo.Session.Create(ctx, live))

	SweepSessions(repo.Session, zap.NewNop())

	removed, err := repo.Session.CleanExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)

	got, err := repo.Session.FindValidSession(ctx, live.Token.String())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestStartSessionSweeperRejectsBadSchedule(t *testing.T) {
	db, err := database.InitDB(zap.NewNop())
	require.NoError(t, err)
	defer db.Close()
	repo := repository.NewRepository(db, zap.NewNop())

	_, err = StartSessionSweeper(repo.Session, "not a schedule", zap.NewNop())
	require.Error(t, err)

	c, err := StartSessionSweeper(repo.Session, "@every 1h", zap.NewNop())
	require.NoError(t, err)
	c.Stop()
}
