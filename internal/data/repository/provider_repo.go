package repository

import (
	"context"
	"fmt"
	"sort"

	"jua-kazi/internal/data/entity"
	"jua-kazi/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const prefixProvider = "provider"

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.Provider) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error)
	FindAll(ctx context.Context) ([]*entity.Provider, error)
	Update(ctx context.Context, id uuid.UUID, fn func(provider *entity.Provider) error) (*entity.Provider, error)
}

type providerRepository struct {
	db  database.KVIface
	log *zap.Logger
}

func NewProviderRepository(db database.KVIface, log *zap.Logger) ProviderRepository {
	return &providerRepository{
		db:  db,
		log: log.With(zap.String("repository", "provider")),
	}
}

func providerKey(id uuid.UUID) []byte {
	return database.MakeKey(prefixProvider, id.String())
}

func (r *providerRepository) Create(ctx context.Context, provider *entity.Provider) error {
	seq, err := r.db.NextSequence()
	if err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	provider.Seq = seq

	if err := database.Put(r.db, providerKey(provider.ID), provider); err != nil {
		r.log.Error("Failed to create provider",
			zap.Error(err),
			zap.String("user_id", provider.UserID.String()),
		)
		return fmt.Errorf("failed to create provider: %w", err)
	}

	return nil
}

func (r *providerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Provider, error) {
	provider, err := database.Get[entity.Provider](r.db, providerKey(id))
	if err != nil {
		r.log.Error("Failed to find provider by ID",
			zap.Error(err),
			zap.String("provider_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find provider: %w", err)
	}
	return provider, nil
}

// FindByUserID returns the earliest listing owned by userID.
func (r *providerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Provider, error) {
	providers, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range providers {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

// FindAll returns every provider in insertion order.
func (r *providerRepository) FindAll(ctx context.Context) ([]*entity.Provider, error) {
	var providers []*entity.Provider
	err := database.Scan(r.db, []byte(prefixProvider+"_"), func(p *entity.Provider) bool {
		providers = append(providers, p)
		return true
	})
	if err != nil {
		r.log.Error("Failed to get providers", zap.Error(err))
		return nil, fmt.Errorf("failed to get providers: %w", err)
	}

	sort.Slice(providers, func(i, j int) bool { return providers[i].Seq < providers[j].Seq })
	return providers, nil
}

// Update applies fn to the stored provider atomically. It returns (nil, nil)
// when the provider does not exist.
func (r *providerRepository) Update(ctx context.Context, id uuid.UUID, fn func(provider *entity.Provider) error) (*entity.Provider, error) {
	provider, err := database.Mutate(r.db, providerKey(id), fn)
	if err != nil {
		r.log.Error("Failed to update provider",
			zap.Error(err),
			zap.String("provider_id", id.String()),
		)
		return nil, fmt.Errorf("failed to update provider: %w", err)
	}
	return provider, nil
}
