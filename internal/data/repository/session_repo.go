package repository

import (
	"context"
	"fmt"
	"time"

	"jua-kazi/internal/data/entity"
	"jua-kazi/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const prefixSession = "session"

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Rebind(ctx context.Context, token string, userID uuid.UUID) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
	CleanExpiredSessions(ctx context.Context) (int, error)
}

type sessionRepository struct {
	db  database.KVIface
	log *zap.Logger
	now func() time.Time
}

func NewSessionRepository(db database.KVIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
		now: time.Now,
	}
}

func sessionKey(token string) []byte {
	return database.MakeKey(prefixSession, token)
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if err := database.Put(r.db, sessionKey(session.Token.String()), session); err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", session.UserID.String()),
		)
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindValidSession returns (nil, nil) for unknown, malformed or expired tokens.
func (r *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if _, err := uuid.Parse(token); err != nil {
		return nil, nil
	}

	session, err := database.Get[entity.Session](r.db, sessionKey(token))
	if err != nil {
		r.log.Error("Failed to find valid session", zap.Error(err))
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	if session == nil || session.Expired(r.now()) {
		return nil, nil
	}

	return session, nil
}

// Rebind points an existing session at another user. It returns (nil, nil)
// when the token is unknown.
func (r *sessionRepository) Rebind(ctx context.Context, token string, userID uuid.UUID) (*entity.Session, error) {
	session, err := database.Mutate(r.db, sessionKey(token), func(s *entity.Session) error {
		s.UserID = userID
		return nil
	})
	if err != nil {
		r.log.Error("Failed to rebind session",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("failed to rebind session: %w", err)
	}
	return session, nil
}

// Revoke deletes the session. Unknown tokens are ignored.
func (r *sessionRepository) Revoke(ctx context.Context, token string) error {
	if err := database.Delete(r.db, sessionKey(token)); err != nil {
		r.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// CleanExpiredSessions deletes every expired session and reports how many
// were removed.
func (r *sessionRepository) CleanExpiredSessions(ctx context.Context) (int, error) {
	now := r.now()

	var expired [][]byte
	err := database.Scan(r.db, []byte(prefixSession+"_"), func(s *entity.Session) bool {
		if s.Expired(now) {
			expired = append(expired, sessionKey(s.Token.String()))
		}
		return true
	})
	if err != nil {
		r.log.Error("Failed to scan sessions", zap.Error(err))
		return 0, fmt.Errorf("failed to clean sessions: %w", err)
	}

	if len(expired) == 0 {
		return 0, nil
	}

	if err := database.Delete(r.db, expired...); err != nil {
		r.log.Error("Failed to clean expired sessions", zap.Error(err))
		return 0, fmt.Errorf("failed to clean sessions: %w", err)
	}

	return len(expired), nil
}
