package langfuse

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// PromptCache serves a Langfuse-managed system prompt, refreshing it at most
// once per TTL. When no prompt can be loaded it returns the fallback text.
type PromptCache struct {
	cfg      PromptLoaderConfig
	fallback string
	cache    *cache.Cache
	load     func(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error)
}

func NewPromptCache(cfg PromptLoaderConfig, fallback string, ttl time.Duration) *PromptCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &PromptCache{
		cfg:      cfg,
		fallback: fallback,
		cache:    cache.New(ttl, 2*ttl),
		load:     LoadPrompt,
	}
}

func (p *PromptCache) key() string {
	return p.cfg.PromptName + "@" + p.cfg.PromptLabel
}

// SystemPrompt returns the cached prompt, loading it on a miss.
func (p *PromptCache) SystemPrompt(ctx context.Context) string {
	if cached, ok := p.cache.Get(p.key()); ok {
		return cached.(Prompt).Text
	}

	prompt, err := p.load(ctx, p.cfg)
	if err != nil || strings.TrimSpace(prompt.Text) == "" {
		slog.Debug("using built-in system prompt", "prompt", p.cfg.PromptName, "error", err)
		return p.fallback
	}

	p.cache.SetDefault(p.key(), prompt)
	slog.Info("system prompt loaded",
		"prompt", p.cfg.PromptName,
		"label", p.cfg.PromptLabel,
		"version", prompt.Version,
		"source", prompt.Source,
	)
	return prompt.Text
}

// Invalidate drops the cached prompt so the next call reloads it.
func (p *PromptCache) Invalidate() {
	p.cache.Delete(p.key())
}
