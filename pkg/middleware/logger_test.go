package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jua-kazi/internal/data/entity"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRecordsSessionUser(t *testing.T) {
	repo := setupRepo(t)
	user, token := createUserWithSession(t, repo, entity.RoleAdmin, time.Now().Add(time.Hour))

	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(Logger(zap.New(core)))
	r.Use(Session(repo.Session, repo.User, zap.NewNop()))
	r.Get("/api/providers/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/api/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/providers/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(httptest.NewRecorder(), req)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/missing", nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	authed := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/api/providers/{id}", authed["route"])
	assert.Equal(t, "/api/providers/abc", authed["path"])
	assert.Equal(t, user.ID.String(), authed["user_id"])
	assert.Equal(t, "admin", authed["role"])
	assert.NotEmpty(t, authed["request_id"])

	anonymous := entries[1].ContextMap()
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.EqualValues(t, http.StatusNotFound, anonymous["status"])
	assert.NotContains(t, anonymous, "user_id")
}
