package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSession(t *testing.T) {
	ctx := context.Background()
	s := NewLocalSession()

	_, ok, err := s.UserID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	id := uuid.New()
	require.NoError(t, s.Bind(ctx, id))
	got, ok, err := s.UserID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, id, got)

	require.NoError(t, s.Clear(ctx))
	_, ok, err = s.UserID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenSessionIssuesAndRebinds(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	s := NewTokenSession(repo.Session, "", time.Hour, ClientMeta{UserAgent: "test", IPAddress: "127.0.0.1"})
	_, ok, err := s.UserID(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	first := uuid.New()
	require.NoError(t, s.Bind(ctx, first))
	token := s.Token()
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), s.ExpiresAt(), time.Minute)

	stored, err := repo.Session.FindValidSession(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "test", *stored.UserAgent)

	// a later request carrying the same token sees the same user
	again := NewTokenSession(repo.Session, token, time.Hour, ClientMeta{})
	got, ok, err := again.UserID(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, first, got)

	second := uuid.New()
	require.NoError(t, again.Bind(ctx, second))
	assert.Equal(t, token, again.Token())

	got, _, err = s.UserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestTokenSessionClearRevokes(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	s := NewTokenSession(repo.Session, "", time.Hour, ClientMeta{})
	require.NoError(t, s.Bind(ctx, uuid.New()))
	token := s.Token()

	require.NoError(t, s.Clear(ctx))
	assert.Empty(t, s.Token())
	require.NoError(t, s.Clear(ctx))

	stored, err := repo.Session.FindValidSession(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestTokenSessionUnknownTokenIssuesNew(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	stale := uuid.NewString()
	s := NewTokenSession(repo.Session, stale, time.Hour, ClientMeta{})
	require.NoError(t, s.Bind(ctx, uuid.New()))
	assert.NotEqual(t, stale, s.Token())
}
