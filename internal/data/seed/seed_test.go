package seed

import (
	"context"
	"testing"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/data/repository"
	"jua-kazi/pkg/database"
	"jua-kazi/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRepo(t *testing.T) *repository.Repository {
	t.Helper()
	db, err := database.InitDB(zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewRepository(db, zap.NewNop())
}

func TestRunSeedsDemoAndAdmin(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	cfg := utils.SeedConfig{
		Demo:          true,
		AdminName:     "Root",
		AdminEmail:    "admin@juakazi.co.ke",
		AdminPhone:    "254700999999",
		AdminPassword: "changeme",
	}
	require.NoError(t, Run(ctx, repo, cfg, zap.NewNop()))

	admin, err := repo.User.FindByEmail(ctx, "admin@juakazi.co.ke")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, utils.CheckPasswordHash("changeme", admin.PasswordHash))

	providers, err := repo.Provider.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, providers, 3)
	assert.Equal(t, entity.CategoryConstruction, providers[0].ServiceCategory)
	for _, p := range providers {
		assert.True(t, p.IsApproved)
		owner, err := repo.User.FindByID(ctx, p.UserID)
		require.NoError(t, err)
		require.NotNil(t, owner)
	}

	// a second run does not duplicate the admin
	require.NoError(t, Run(ctx, repo, utils.SeedConfig{AdminEmail: cfg.AdminEmail}, zap.NewNop()))
	total, err := repo.User.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
}

func TestRunWithoutDemo(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, Run(ctx, repo, utils.SeedConfig{}, zap.NewNop()))

	providers, err := repo.Provider.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, providers)
}

func TestRunRefusesAdminWithoutPassword(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	for _, password := range []string{"", "12345"} {
		err := Run(ctx, repo, utils.SeedConfig{AdminEmail: "admin@juakazi.co.ke", AdminPassword: password}, zap.NewNop())
		require.ErrorIs(t, err, ErrAdminPassword)
	}

	admin, err := repo.User.FindByEmail(ctx, "admin@juakazi.co.ke")
	require.NoError(t, err)
	assert.Nil(t, admin)
}
