package cron

import (
	"context"
	"fmt"
	"time"

	"jua-kazi/internal/data/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartSessionSweeper schedules the removal of expired session records. The
// caller owns the returned scheduler and must Stop it on shutdown.
func StartSessionSweeper(sessions repository.SessionRepository, schedule string, log *zap.Logger) (*cron.Cron, error) {
	log = log.With(zap.String("job", "session_sweeper"))

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		SweepSessions(sessions, log)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session sweeper %q: %w", schedule, err)
	}

	c.Start()
	log.Info("Session sweeper started", zap.String("schedule", schedule))
	return c, nil
}

// SweepSessions runs one cleanup pass.
func SweepSessions(sessions repository.SessionRepository, log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := sessions.CleanExpiredSessions(ctx)
	if err != nil {
		log.Error("Failed to sweep sessions", zap.Error(err))
		return
	}
	if removed > 0 {
		log.Info("Expired sessions removed", zap.Int("count", removed))
	}
}
