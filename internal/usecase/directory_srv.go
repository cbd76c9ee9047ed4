package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/data/repository"
	"jua-kazi/internal/dto/request"
	apperrors "jua-kazi/pkg/errors"
	"jua-kazi/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Directory owns the users, the provider listings and one client's current
// session. It is the only sanctioned way to read or change them.
type Directory interface {
	ListProviders(ctx context.Context) ([]*entity.ProviderListing, error)
	GetProvider(ctx context.Context, id string) (*entity.ProviderListing, error)
	GetProviderByUser(ctx context.Context, userID string) (*entity.Provider, error)

	CreateAccount(ctx context.Context, req *request.CreateAccountRequest) (*entity.User, error)
	UpdateAccount(ctx context.Context, userID string, req *request.UpdateAccountRequest) (*entity.User, error)

	CreateProviderProfile(ctx context.Context, req *request.CreateProfileRequest) (*entity.Provider, error)
	UpdateProviderProfile(ctx context.Context, id string, req *request.UpdateProfileRequest) (*entity.Provider, error)
	AddProviderImage(ctx context.Context, id, url string) (*entity.Provider, error)

	AdminSetApproved(ctx context.Context, id string, approved bool) (*entity.Provider, error)
	AdminSetFeatured(ctx context.Context, id string, featured bool) (*entity.Provider, error)
	AdminSetVerified(ctx context.Context, userID string, verified bool) (*entity.User, error)
	ListUsers(ctx context.Context, page request.PaginatedRequest) ([]*entity.User, int64, error)

	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*entity.User, error)
}

type directoryService struct {
	repo    *repository.Repository
	session SessionPointer
	log     *zap.Logger
	now     func() time.Time
}

func NewDirectory(repo *repository.Repository, session SessionPointer, log *zap.Logger) Directory {
	return &directoryService{
		repo:    repo,
		session: session,
		log:     log.With(zap.String("service", "directory")),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// ==================== READS ====================

func (s *directoryService) ListProviders(ctx context.Context) ([]*entity.ProviderListing, error) {
	providers, err := s.repo.Provider.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}

	owners := make(map[uuid.UUID]*entity.User)
	listings := make([]*entity.ProviderListing, 0, len(providers))
	for _, p := range providers {
		owner, seen := owners[p.UserID]
		if !seen {
			owner, err = s.repo.User.FindByID(ctx, p.UserID)
			if err != nil {
				return nil, fmt.Errorf("list providers: %w", err)
			}
			owners[p.UserID] = owner
		}
		listings = append(listings, &entity.ProviderListing{Provider: p, User: owner})
	}

	return listings, nil
}

func (s *directoryService) GetProvider(ctx context.Context, id string) (*entity.ProviderListing, error) {
	provider, err := s.findProvider(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.User.FindByID(ctx, provider.UserID)
	if err != nil {
		return nil, fmt.Errorf("get provider %s: %w", id, err)
	}

	return &entity.ProviderListing{Provider: provider, User: owner}, nil
}

func (s *directoryService) GetProviderByUser(ctx context.Context, userID string) (*entity.Provider, error) {
	uid, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}

	provider, err := s.repo.Provider.FindByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("get provider by user %s: %w", userID, err)
	}
	if provider == nil {
		return nil, fmt.Errorf("provider for user %s: %w", userID, apperrors.ErrNotFound)
	}

	return provider, nil
}

func (s *directoryService) CurrentSession(ctx context.Context) (*entity.User, error) {
	return s.currentUser(ctx)
}

// ==================== ACCOUNTS ====================

func (s *directoryService) CreateAccount(ctx context.Context, req *request.CreateAccountRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create account validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	user := &entity.User{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: s.now(),
		},
		FullName:    strings.TrimSpace(req.FullName),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Email:       strings.TrimSpace(req.Email),
		Role:        entity.RoleProvider,
		IsVerified:  false,
	}

	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("create account: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	// the account stays even if the session cannot be bound
	if err := s.session.Bind(ctx, user.ID); err != nil {
		s.log.Error("Failed to bind session after sign-up",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("bind session: %w", err)
	}

	s.log.Info("Account created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return user, nil
}

// UpdateAccount is where contact changes propagate: listings never copy the
// phone number, so every later join sees the new value.
func (s *directoryService) UpdateAccount(ctx context.Context, userID string, req *request.UpdateAccountRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update account validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	uid, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}

	user, err := s.repo.User.Update(ctx, uid, func(u *entity.User) error {
		if req.FullName != nil {
			u.FullName = strings.TrimSpace(*req.FullName)
		}
		if req.PhoneNumber != nil {
			u.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
		}
		if req.Email != nil {
			u.Email = strings.TrimSpace(*req.Email)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update account %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}

	s.log.Info("Account updated", zap.String("user_id", userID))
	return user, nil
}

// ==================== PROFILES ====================

func (s *directoryService) CreateProviderProfile(ctx context.Context, req *request.CreateProfileRequest) (*entity.Provider, error) {
	owner, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("create profile: %w", apperrors.ErrUnauthenticated)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	category, _ := entity.ParseServiceCategory(req.ServiceCategory)
	images := append([]string{}, req.Images...)

	provider := &entity.Provider{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUID(),
			CreatedAt: s.now(),
		},
		UserID:          owner.ID,
		ServiceCategory: category,
		Location:        strings.TrimSpace(req.Location),
		Description:     strings.TrimSpace(req.Description),
		PriceRange:      trimOptional(req.PriceRange),
		Images:          images,
		IsFeatured:      false,
		IsApproved:      false,
	}

	if err := s.repo.Provider.Create(ctx, provider); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.log.Info("Provider profile created, pending approval",
		zap.String("provider_id", provider.ID.String()),
		zap.String("user_id", owner.ID.String()),
		zap.String("category", string(category)))

	return provider, nil
}

func (s *directoryService) UpdateProviderProfile(ctx context.Context, id string, req *request.UpdateProfileRequest) (*entity.Provider, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	provider, err := s.mutateProvider(ctx, id, func(p *entity.Provider) error {
		if req.ServiceCategory != nil {
			p.ServiceCategory, _ = entity.ParseServiceCategory(*req.ServiceCategory)
		}
		if req.Location != nil {
			p.Location = strings.TrimSpace(*req.Location)
		}
		if req.Description != nil {
			p.Description = strings.TrimSpace(*req.Description)
		}
		if req.PriceRange != nil {
			p.PriceRange = trimOptional(req.PriceRange)
		}
		if req.Images != nil {
			p.Images = append([]string{}, (*req.Images)...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Provider profile updated", zap.String("provider_id", id))
	return provider, nil
}

// AddProviderImage appends url to the listing's images in the same write
// that reads them, so concurrent uploads all land.
func (s *directoryService) AddProviderImage(ctx context.Context, id, url string) (*entity.Provider, error) {
	if strings.TrimSpace(url) == "" {
		return nil, fmt.Errorf("%w: image url is empty", apperrors.ErrValidation)
	}

	provider, err := s.mutateProvider(ctx, id, func(p *entity.Provider) error {
		if len(p.Images) >= MaxProviderImages {
			return fmt.Errorf("%w: a listing holds at most %d images", apperrors.ErrValidation, MaxProviderImages)
		}
		p.Images = append(p.Images, url)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Provider image added", zap.String("provider_id", id), zap.Int("images", len(provider.Images)))
	return provider, nil
}

// ==================== ADMIN ====================

func (s *directoryService) AdminSetApproved(ctx context.Context, id string, approved bool) (*entity.Provider, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := s.mutateProvider(ctx, id, func(p *entity.Provider) error {
		p.IsApproved = approved
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Provider approval changed",
		zap.String("provider_id", id),
		zap.Bool("approved", approved),
		zap.String("admin_id", admin.ID.String()))
	return provider, nil
}

func (s *directoryService) AdminSetFeatured(ctx context.Context, id string, featured bool) (*entity.Provider, error) {
	admin, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	provider, err := s.mutateProvider(ctx, id, func(p *entity.Provider) error {
		p.IsFeatured = featured
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Provider featured flag changed",
		zap.String("provider_id", id),
		zap.Bool("featured", featured),
		zap.String("admin_id", admin.ID.String()))
	return provider, nil
}

func (s *directoryService) AdminSetVerified(ctx context.Context, userID string, verified bool) (*entity.User, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	uid, err := utils.ParseUUID(userID)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}

	user, err := s.repo.User.Update(ctx, uid, func(u *entity.User) error {
		u.IsVerified = verified
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify user %s: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}

	s.log.Info("User verification changed", zap.String("user_id", userID), zap.Bool("verified", verified))
	return user, nil
}

func (s *directoryService) ListUsers(ctx context.Context, page request.PaginatedRequest) ([]*entity.User, int64, error) {
	if _, err := s.requireAdmin(ctx); err != nil {
		return nil, 0, err
	}

	users, err := s.repo.User.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	return users, total, nil
}

// ==================== SESSION ====================

// Login binds the account with the given email. Accounts created with a
// password must present it; the session is untouched on failure.
func (s *directoryService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		s.log.Warn("Login with unknown email", zap.String("email", req.Email))
		return nil, fmt.Errorf("login %s: %w", req.Email, apperrors.ErrInvalidCredentials)
	}

	if user.HasPassword() {
		if req.Password == nil || !utils.CheckPasswordHash(*req.Password, user.PasswordHash) {
			s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
			return nil, fmt.Errorf("login %s: %w", req.Email, apperrors.ErrInvalidCredentials)
		}
	}

	if err := s.session.Bind(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("bind session: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return user, nil
}

func (s *directoryService) Logout(ctx context.Context) error {
	if err := s.session.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// ==================== HELPER METHODS ====================

// currentUser resolves the session pointer. A pointer to a user that no
// longer exists counts as no session.
func (s *directoryService) currentUser(ctx context.Context) (*entity.User, error) {
	userID, ok, err := s.session.UserID(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return user, nil
}

func (s *directoryService) requireAdmin(ctx context.Context) (*entity.User, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("admin action: %w", apperrors.ErrUnauthenticated)
	}
	if !user.IsAdmin() {
		s.log.Warn("Non-admin attempted admin action", zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("admin action: %w", apperrors.ErrForbidden)
	}
	return user, nil
}

func (s *directoryService) findProvider(ctx context.Context, id string) (*entity.Provider, error) {
	pid, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("provider %q: %w", id, apperrors.ErrNotFound)
	}

	provider, err := s.repo.Provider.FindByID(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("get provider %s: %w", id, err)
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %s: %w", id, apperrors.ErrNotFound)
	}
	return provider, nil
}

func (s *directoryService) mutateProvider(ctx context.Context, id string, fn func(p *entity.Provider) error) (*entity.Provider, error) {
	pid, err := utils.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("provider %q: %w", id, apperrors.ErrNotFound)
	}

	provider, err := s.repo.Provider.Update(ctx, pid, fn)
	if err != nil {
		return nil, fmt.Errorf("update provider %s: %w", id, err)
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %s: %w", id, apperrors.ErrNotFound)
	}
	return provider, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
