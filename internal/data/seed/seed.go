package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/data/repository"
	"jua-kazi/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAdminPassword is returned when ADMIN_EMAIL is set without an
// ADMIN_PASSWORD of at least minAdminPassword characters.
var ErrAdminPassword = errors.New("bootstrap admin needs a password")

const minAdminPassword = 6

type demoProvider struct {
	name        string
	email       string
	phone       string
	category    entity.ServiceCategory
	location    string
	description string
	priceRange  string
	image       string
	featured    bool
	age         time.Duration
}

var demoProviders = []demoProvider{
	{
		name:        "John the Fundi",
		email:       "john@juakazi.co.ke",
		phone:       "254700000000",
		category:    entity.CategoryConstruction,
		location:    "Nairobi",
		description: "Expert mason with over 10 years experience in tiling and walling. Fast and reliable service for your home.",
		priceRange:  "KES 2,000 - 5,000",
		image:       "https://picsum.photos/seed/fundi/400/300",
		featured:    true,
		age:         1000 * time.Second,
	},
	{
		name:        "Mary Cleaners",
		email:       "mary@juakazi.co.ke",
		phone:       "254711111111",
		category:    entity.CategoryCleaning,
		location:    "Mombasa",
		description: "Specialized in deep cleaning, laundry, and office sanitation. We use eco-friendly materials.",
		priceRange:  "KES 1,500/day",
		image:       "https://picsum.photos/seed/cleaner/400/300",
		age:         500 * time.Second,
	},
	{
		name:        "Sam Electric",
		email:       "sam@juakazi.co.ke",
		phone:       "254722222222",
		category:    entity.CategoryElectrical,
		location:    "Kisumu",
		description: "Licensed electrician for domestic and commercial wiring. Emergency repairs available 24/7.",
		priceRange:  "Varies",
		image:       "https://picsum.photos/seed/electric/400/300",
		featured:    true,
		age:         200 * time.Second,
	},
}

// Run loads the bootstrap admin and, when enabled, the demo listings into an
// empty store.
func Run(ctx context.Context, repo *repository.Repository, cfg utils.SeedConfig, log *zap.Logger) error {
	log = log.With(zap.String("component", "seed"))

	if strings.TrimSpace(cfg.AdminEmail) != "" {
		if err := seedAdmin(ctx, repo, cfg, log); err != nil {
			return err
		}
	}

	if !cfg.Demo {
		return nil
	}

	now := time.Now()
	for _, d := range demoProviders {
		user := &entity.User{
			BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: now.Add(-d.age)},
			FullName:    d.name,
			PhoneNumber: d.phone,
			Email:       d.email,
			Role:        entity.RoleProvider,
			IsVerified:  true,
		}
		if err := repo.User.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", d.email, err)
		}

		priceRange := d.priceRange
		provider := &entity.Provider{
			BaseSimple:      entity.BaseSimple{ID: uuid.New(), CreatedAt: now.Add(-d.age)},
			UserID:          user.ID,
			ServiceCategory: d.category,
			Location:        d.location,
			Description:     d.description,
			PriceRange:      &priceRange,
			Images:          []string{d.image},
			IsFeatured:      d.featured,
			IsApproved:      true,
		}
		if err := repo.Provider.Create(ctx, provider); err != nil {
			return fmt.Errorf("seed provider %s: %w", d.name, err)
		}
	}

	log.Info("Demo listings seeded", zap.Int("count", len(demoProviders)))
	return nil
}

func seedAdmin(ctx context.Context, repo *repository.Repository, cfg utils.SeedConfig, log *zap.Logger) error {
	existing, err := repo.User.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if existing != nil {
		return nil
	}
	if len(cfg.AdminPassword) < minAdminPassword {
		log.Error("Refusing to seed admin without a usable password", zap.String("email", cfg.AdminEmail))
		return fmt.Errorf("seed admin %s: %w", cfg.AdminEmail, ErrAdminPassword)
	}

	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	admin := &entity.User{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		FullName:     cfg.AdminName,
		PhoneNumber:  cfg.AdminPhone,
		Email:        cfg.AdminEmail,
		Role:         entity.RoleAdmin,
		IsVerified:   true,
		PasswordHash: hash,
	}

	if err := repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info("Bootstrap admin created", zap.String("email", admin.Email))
	return nil
}
