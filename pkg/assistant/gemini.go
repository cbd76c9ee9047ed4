package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jua-kazi/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

var (
	errDisabled    = errors.New("assistant disabled: no api key")
	errRateLimited = errors.New("assistant rate limit exceeded")
	errEmpty       = errors.New("empty model response")
)

const apiVersion = "v1beta"

const bioPrompt = `You are a professional marketing copywriter for local Kenyan businesses.
Optimize this service provider's bio to be more appealing to customers while remaining professional and concise.
Keep it friendly and use Kenyan English context if appropriate.

Category: %s
Current Bio: %s`

const keywordPrompt = `Generate a list of %d relevant search terms or categories related to the query: %q. Return only a JSON array of strings.`

// Client asks Gemini for search keywords and bio rewrites. Every failure
// degrades to an empty or unchanged result and is only logged.
type Client struct {
	genai          *genai.Client
	model          string
	maxSuggestions int
	maxBioTokens   int

	limiter *rate.Limiter
	log     *zap.Logger
}

// NewClient builds the SDK client when an API key is configured. Without
// one, or if the SDK refuses the config, the client stays disabled.
func NewClient(cfg utils.AssistantConfig, log *zap.Logger) *Client {
	log = log.With(zap.String("component", "assistant"))

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	limit := rate.Limit(cfg.RatePerSecond)
	if cfg.RatePerSecond <= 0 {
		limit = rate.Inf
	}
	maxSuggestions := cfg.MaxSuggestions
	if maxSuggestions < 1 {
		maxSuggestions = 5
	}

	c := &Client{
		model:          cfg.Model,
		maxSuggestions: maxSuggestions,
		maxBioTokens:   cfg.MaxBioTokens,
		limiter:        rate.NewLimiter(limit, burst),
		log:            log,
	}

	if cfg.APIKey == "" {
		return c
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		log.Error("Failed to init Gemini client", zap.Error(err))
		return c
	}
	c.genai = client
	return c
}

// Enabled reports whether the SDK client is ready.
func (c *Client) Enabled() bool {
	return c.genai != nil
}

// SuggestKeywords returns up to the configured number of search terms
// related to query. Any failure yields an empty list.
func (c *Client) SuggestKeywords(ctx context.Context, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}
	}

	text, err := c.generate(ctx, fmt.Sprintf(keywordPrompt, c.maxSuggestions, query), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		c.degrade("suggest keywords", err)
		return []string{}
	}

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		c.degrade("suggest keywords", fmt.Errorf("decode suggestions: %w", err))
		return []string{}
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
		if len(out) == c.maxSuggestions {
			break
		}
	}
	return out
}

// RewriteBio returns a marketing rewrite of text, or text unchanged when the
// model is unavailable.
func (c *Client) RewriteBio(ctx context.Context, text, category string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	cfg := &genai.GenerateContentConfig{}
	if c.maxBioTokens > 0 {
		cfg.MaxOutputTokens = int32(c.maxBioTokens)
	}

	out, err := c.generate(ctx, fmt.Sprintf(bioPrompt, category, text), cfg)
	if err != nil {
		c.degrade("rewrite bio", err)
		return text
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return text
	}
	return out
}

func (c *Client) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	if !c.Enabled() {
		return "", errDisabled
	}
	if !c.limiter.Allow() {
		return "", errRateLimited
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errEmpty
	}
	return text, nil
}

func (c *Client) degrade(op string, err error) {
	if errors.Is(err, errDisabled) {
		c.log.Debug("Assistant skipped", zap.String("op", op))
		return
	}
	c.log.Warn("Assistant call failed, degrading", zap.String("op", op), zap.Error(err))
}
