package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"jua-kazi/pkg/assistant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSuggester struct {
	mu       sync.Mutex
	queries  []string
	category string
	rewrite  func(text string) string
}

func (f *fakeSuggester) SuggestKeywords(ctx context.Context, query string) []string {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	return []string{query + " near me", query + " services"}
}

func (f *fakeSuggester) RewriteBio(ctx context.Context, text, category string) string {
	f.mu.Lock()
	f.category = category
	f.mu.Unlock()
	if f.rewrite == nil {
		return text
	}
	return f.rewrite(text)
}

func TestSuggest(t *testing.T) {
	fake := &fakeSuggester{}
	svc := NewAssistantService(fake, assistant.NewDebouncer(0), zap.NewNop())

	resp := svc.Suggest(context.Background(), "client-1", "plumber")
	assert.False(t, resp.Stale)
	assert.Equal(t, "plumber", resp.Query)
	assert.Equal(t, []string{"plumber near me", "plumber services"}, resp.Suggestions)
}

func TestSuggestEmptyQuerySkipsCollaborator(t *testing.T) {
	fake := &fakeSuggester{}
	svc := NewAssistantService(fake, assistant.NewDebouncer(0), zap.NewNop())

	resp := svc.Suggest(context.Background(), "client-1", "   ")
	assert.Empty(t, resp.Suggestions)
	assert.NotNil(t, resp.Suggestions)
	assert.Empty(t, fake.queries)
}

func TestSuggestSupersededIsStale(t *testing.T) {
	fake := &fakeSuggester{}
	svc := NewAssistantService(fake, assistant.NewDebouncer(200*time.Millisecond), zap.NewNop())

	first := make(chan bool, 1)
	go func() {
		first <- svc.Suggest(context.Background(), "client-1", "plu").Stale
	}()

	time.Sleep(50 * time.Millisecond)
	latest := svc.Suggest(context.Background(), "client-1", "plumber")

	require.True(t, <-first)
	assert.False(t, latest.Stale)
	assert.Equal(t, []string{"plumber"}, fake.queries)
}

func TestRewriteBio(t *testing.T) {
	fake := &fakeSuggester{rewrite: func(text string) string { return "Polished: " + text }}
	svc := NewAssistantService(fake, assistant.NewDebouncer(0), zap.NewNop())

	resp := svc.RewriteBio(context.Background(), "I fix pipes", "PLUMBING")
	assert.True(t, resp.Rewritten)
	assert.Equal(t, "Polished: I fix pipes", resp.Text)
	assert.Equal(t, "Plumbing", fake.category)

	unchanged := NewAssistantService(&fakeSuggester{}, assistant.NewDebouncer(0), zap.NewNop())
	resp = unchanged.RewriteBio(context.Background(), "I fix pipes", "")
	assert.False(t, resp.Rewritten)
	assert.Equal(t, "I fix pipes", resp.Text)
}
