package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/data/repository"
	"jua-kazi/pkg/utils"

	"github.com/google/uuid"
)

// SessionPointer is the "currently signed in user" of one client.
type SessionPointer interface {
	// UserID reports the bound user, if any.
	UserID(ctx context.Context) (uuid.UUID, bool, error)
	// Bind makes userID the current session.
	Bind(ctx context.Context, userID uuid.UUID) error
	// Clear unbinds the session. Clearing an empty session is a no-op.
	Clear(ctx context.Context) error
}

// LocalSession is a single in-process pointer, for embedding the directory
// in a one-user client.
type LocalSession struct {
	mu     sync.Mutex
	userID *uuid.UUID
}

func NewLocalSession() *LocalSession {
	return &LocalSession{}
}

func (s *LocalSession) UserID(ctx context.Context) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID == nil {
		return uuid.Nil, false, nil
	}
	return *s.userID, true, nil
}

func (s *LocalSession) Bind(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = &userID
	return nil
}

func (s *LocalSession) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = nil
	return nil
}

// ClientMeta is recorded on new token sessions.
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

// TokenSession keeps the pointer in a session record addressed by a bearer
// token, so each HTTP client has its own current session. Binding without a
// token issues one; Token reports it afterwards.
type TokenSession struct {
	repo repository.SessionRepository
	ttl  time.Duration
	meta ClientMeta

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewTokenSession(repo repository.SessionRepository, token string, ttl time.Duration, meta ClientMeta) *TokenSession {
	return &TokenSession{
		repo:  repo,
		ttl:   ttl,
		meta:  meta,
		token: token,
	}
}

func (s *TokenSession) UserID(ctx context.Context) (uuid.UUID, bool, error) {
	token := s.Token()
	if token == "" {
		return uuid.Nil, false, nil
	}

	session, err := s.repo.FindValidSession(ctx, token)
	if err != nil {
		return uuid.Nil, false, err
	}
	if session == nil {
		return uuid.Nil, false, nil
	}

	s.mu.Lock()
	s.expiresAt = session.ExpiresAt
	s.mu.Unlock()

	return session.UserID, true, nil
}

func (s *TokenSession) Bind(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		session, err := s.repo.Rebind(ctx, s.token, userID)
		if err != nil {
			return err
		}
		if session != nil && !session.Expired(time.Now()) {
			s.expiresAt = session.ExpiresAt
			return nil
		}
	}

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		UserAgent: optional(s.meta.UserAgent),
		IPAddress: optional(s.meta.IPAddress),
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		return fmt.Errorf("issue session token: %w", err)
	}

	s.token = session.Token.String()
	s.expiresAt = session.ExpiresAt
	return nil
}

func (s *TokenSession) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return nil
	}
	if err := s.repo.Revoke(ctx, s.token); err != nil {
		return err
	}
	s.token = ""
	s.expiresAt = time.Time{}
	return nil
}

// Token is the bearer token currently held, or "".
func (s *TokenSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// ExpiresAt is the expiry of the held token; zero until it was bound or read.
func (s *TokenSession) ExpiresAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresAt
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
