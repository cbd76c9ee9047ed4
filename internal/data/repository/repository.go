package repository

import (
	"jua-kazi/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Provider ProviderRepository
	Session  SessionRepository
}

func NewRepository(db database.KVIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Provider: NewProviderRepository(db, log),
		Session:  NewSessionRepository(db, log),
	}
}
