package usecase

import (
	"context"
	"errors"
	"strings"

	"jua-kazi/internal/data/entity"
	"jua-kazi/internal/dto/response"
	"jua-kazi/pkg/assistant"

	"go.uber.org/zap"
)

// Suggester is the text-suggestion collaborator. Implementations never fail:
// they degrade to an empty list or the unchanged text.
type Suggester interface {
	SuggestKeywords(ctx context.Context, query string) []string
	RewriteBio(ctx context.Context, text, category string) string
}

type AssistantService interface {
	// Suggest returns keyword suggestions for query. A request replaced by a
	// newer one from the same client comes back Stale with no suggestions.
	Suggest(ctx context.Context, clientKey, query string) *response.SuggestionsResponse
	RewriteBio(ctx context.Context, text, category string) *response.RewriteBioResponse
}

type assistantService struct {
	suggester Suggester
	debouncer *assistant.Debouncer
	log       *zap.Logger
}

func NewAssistantService(suggester Suggester, debouncer *assistant.Debouncer, log *zap.Logger) AssistantService {
	return &assistantService{
		suggester: suggester,
		debouncer: debouncer,
		log:       log.With(zap.String("service", "assistant")),
	}
}

func (s *assistantService) Suggest(ctx context.Context, clientKey, query string) *response.SuggestionsResponse {
	resp := &response.SuggestionsResponse{Query: query, Suggestions: []string{}}
	if strings.TrimSpace(query) == "" {
		return resp
	}

	var suggestions []string
	err := s.debouncer.Do(ctx, clientKey, func(ctx context.Context) error {
		suggestions = s.suggester.SuggestKeywords(ctx, query)
		return nil
	})
	switch {
	case errors.Is(err, assistant.ErrSuperseded):
		s.log.Debug("Suggestion request superseded", zap.String("client", clientKey))
		resp.Stale = true
		return resp
	case err != nil:
		s.log.Debug("Suggestion request abandoned", zap.String("client", clientKey), zap.Error(err))
		return resp
	}

	if suggestions != nil {
		resp.Suggestions = suggestions
	}
	return resp
}

func (s *assistantService) RewriteBio(ctx context.Context, text, category string) *response.RewriteBioResponse {
	label := string(entity.CategoryOther)
	if c, ok := entity.ParseServiceCategory(category); ok {
		label = c.Label()
	}

	out := s.suggester.RewriteBio(ctx, text, label)
	return &response.RewriteBioResponse{
		Text:      out,
		Rewritten: out != text,
	}
}
