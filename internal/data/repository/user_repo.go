package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"jua-kazi/internal/data/entity"
	"jua-kazi/pkg/database"
	"jua-kazi/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const prefixUser = "user"

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, id uuid.UUID, fn func(user *entity.User) error) (*entity.User, error)
}

type userRepository struct {
	db  database.KVIface
	log *zap.Logger
}

func NewUserRepository(db database.KVIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func userKey(id uuid.UUID) []byte {
	return database.MakeKey(prefixUser, id.String())
}

// Create stores a new user, stamping its insertion sequence.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	seq, err := ur.db.NextSequence()
	if err != nil {
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}
	user.Seq = seq

	if err := database.Put(ur.db, userKey(user.ID), user); err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

// FindByID returns (nil, nil) when no such user exists.
func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := database.Get[entity.User](ur.db, userKey(id))
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}
	return user, nil
}

// FindByEmail matches case-insensitively. Emails are not unique, so the
// earliest registered account wins.
func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = strings.TrimSpace(email)

	users, err := ur.all()
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, nil
}

// FindAll returns a page of users in registration order.
func (ur *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	users, err := ur.all()
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all users limit %d offset %d: %w", limit, offset, err)
	}

	return utils.Paginate(users, offset, limit), nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := database.Scan(ur.db, []byte(prefixUser+"_"), func(*entity.User) bool {
		count++
		return true
	})
	if err != nil {
		ur.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}
	return count, nil
}

// Update applies fn to the stored user atomically. It returns (nil, nil)
// when the user does not exist.
func (ur *userRepository) Update(ctx context.Context, id uuid.UUID, fn func(user *entity.User) error) (*entity.User, error) {
	user, err := database.Mutate(ur.db, userKey(id), fn)
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("update user %s: %w", id.String(), err)
	}
	return user, nil
}

func (ur *userRepository) all() ([]*entity.User, error) {
	var users []*entity.User
	err := database.Scan(ur.db, []byte(prefixUser+"_"), func(u *entity.User) bool {
		users = append(users, u)
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Seq < users[j].Seq })
	return users, nil
}
