package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/data/repository"
	"jua-kazi/pkg/database"
	"jua-kazi/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRepo(t *testing.T) *repository.Repository {
	t.Helper()
	db, err := database.InitDB(zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return repository.NewRepository(db, zap.NewNop())
}

func createUserWithSession(t *testing.T, repo *repository.Repository, role entity.UserRole, expiresAt time.Time) (*entity.User, string) {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		FullName:   "Test User",
		Email:      uuid.NewString() + "@x.com",
		Role:       role,
	}
	require.NoError(t, repo.User.Create(ctx, user))

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     user.ID,
		Token:      uuid.New(),
		ExpiresAt:  expiresAt,
	}
	require.NoError(t, repo.Session.Create(ctx, session))
	return user, session.Token.String()
}

// echo reports what the middleware put in the context.
func echo(t *testing.T, seen *uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
			*seen = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionMiddleware(t *testing.T) {
	repo := setupRepo(t)
	user, token := createUserWithSession(t, repo, entity.RoleProvider, time.Now().Add(time.Hour))
	_, expired := createUserWithSession(t, repo, entity.RoleProvider, time.Now().Add(-time.Hour))

	tt := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   uuid.UUID
	}{
		{name: "Anonymous", header: "", wantStatus: http.StatusOK},
		{name: "Valid token", header: "Bearer " + token, wantStatus: http.StatusOK, wantUser: user.ID},
		{name: "Lowercase scheme", header: "bearer " + token, wantStatus: http.StatusOK, wantUser: user.ID},
		{name: "Expired token is ignored", header: "Bearer " + expired, wantStatus: http.StatusOK},
		{name: "Unknown token is ignored", header: "Bearer " + uuid.NewString(), wantStatus: http.StatusOK},
		{name: "Malformed header", header: "Token " + token, wantStatus: http.StatusUnauthorized},
		{name: "Missing token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			var seen uuid.UUID
			h := Session(repo.Session, repo.User, zap.NewNop())(echo(t, &seen))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantUser, seen)
		})
	}
}

func TestRequireSessionAndAdmin(t *testing.T) {
	repo := setupRepo(t)
	_, providerToken := createUserWithSession(t, repo, entity.RoleProvider, time.Now().Add(time.Hour))
	_, adminToken := createUserWithSession(t, repo, entity.RoleAdmin, time.Now().Add(time.Hour))

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	chain := Session(repo.Session, repo.User, zap.NewNop())(RequireSession(Admin(repo.User, zap.NewNop())(ok)))

	tt := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "Anonymous", token: "", wantStatus: http.StatusUnauthorized},
		{name: "Provider", token: providerToken, wantStatus: http.StatusForbidden},
		{name: "Admin", token: adminToken, wantStatus: http.StatusNoContent},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			chain.ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRecover(t *testing.T) {
	h := Recover(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":false,"message":"Internal server error"}`, rec.Body.String())
}
