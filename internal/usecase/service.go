package usecase

import (
	"time"

	"jua-kazi/internal/data/repository"
	"jua-kazi/pkg/utils"

	"go.uber.org/zap"
)

// Service groups the stateless services and builds a Directory per client
// session over the shared repositories.
type Service struct {
	Assistant AssistantService
	Images    ImageService

	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	assistant AssistantService,
	images ImageService,
	log *zap.Logger,
) *Service {
	return &Service{
		Assistant: assistant,
		Images:    images,
		repo:      repo,
		config:    config,
		log:       log,
	}
}

// Directory returns the directory as seen through session.
func (s *Service) Directory(session SessionPointer) Directory {
	return NewDirectory(s.repo, session, s.log)
}

// ClientSession wraps an HTTP client's bearer token ("" if it has none).
func (s *Service) ClientSession(token string, meta ClientMeta) *TokenSession {
	return NewTokenSession(s.repo.Session, token, s.SessionTTL(), meta)
}

func (s *Service) SessionTTL() time.Duration {
	hours := s.config.Session.ExpiryHours
	if hours <= 0 {
		hours = 24 * 7
	}
	return time.Duration(hours) * time.Hour
}
