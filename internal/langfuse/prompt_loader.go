package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const (
	PromptSourceLangfuse = "langfuse"
	PromptSourceFile     = "file"

	promptFetchTimeout = 5 * time.Second
)

var (
	errPromptNotConfigured = errors.New("langfuse prompt not configured")
	errNoSystemMessage     = errors.New("chat prompt has no system message")
)

// PromptLoaderConfig names a Langfuse-managed prompt. FallbackPath mirrors the
// last fetched version and is read when Langfuse cannot be reached.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	PromptName   string
	PromptLabel  string
	FallbackPath string

	HTTPClient *http.Client
}

func (c PromptLoaderConfig) remoteEnabled() bool {
	return c.PromptName != "" && c.BaseURL != "" && c.PublicKey != "" && c.SecretKey != ""
}

// Prompt is a resolved system prompt.
type Prompt struct {
	Text    string
	Version int // 0 unless fetched from Langfuse
	Source  string
}

// LoadPrompt fetches the system prompt from Langfuse, mirroring it to
// FallbackPath, and falls back to that file when the fetch is not possible.
func LoadPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	fetchErr := errPromptNotConfigured
	if cfg.remoteEnabled() {
		prompt, err := fetchPrompt(ctx, cfg)
		if err == nil {
			if err := mirrorPrompt(cfg.FallbackPath, prompt.Text); err != nil {
				logger().Warn("failed to mirror prompt", "path", cfg.FallbackPath, "error", err)
			}
			return prompt, nil
		}
		fetchErr = err
		logger().Warn("prompt fetch failed", "prompt", cfg.PromptName, "error", err)
	}

	if cfg.FallbackPath == "" {
		return Prompt{}, fetchErr
	}
	data, err := os.ReadFile(cfg.FallbackPath)
	if err != nil {
		return Prompt{}, errors.Join(fetchErr, fmt.Errorf("read prompt file: %w", err))
	}
	return Prompt{Text: string(data), Source: PromptSourceFile}, nil
}

type promptResponse struct {
	Type    string          `json:"type"`
	Version int             `json:"version"`
	Prompt  json.RawMessage `json:"prompt"`
}

type chatMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

func fetchPrompt(ctx context.Context, cfg PromptLoaderConfig) (Prompt, error) {
	endpoint, err := url.JoinPath(cfg.BaseURL, "api/public/v2/prompts", cfg.PromptName)
	if err != nil {
		return Prompt{}, fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	if cfg.PromptLabel != "" {
		endpoint += "?" + url.Values{"label": {cfg.PromptLabel}}.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, promptFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Prompt{}, fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(cfg.PublicKey, cfg.SecretKey)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return Prompt{}, fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Prompt{}, fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pr promptResponse
	if err := sonic.ConfigStd.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return Prompt{}, fmt.Errorf("decode prompt response: %w", err)
	}

	text, err := promptText(pr)
	if err != nil {
		return Prompt{}, err
	}
	return Prompt{Text: text, Version: pr.Version, Source: PromptSourceLangfuse}, nil
}

// promptText extracts the system instructions. Chat prompts contribute only
// their system messages; the reflection request supplies its own user turn.
func promptText(pr promptResponse) (string, error) {
	switch pr.Type {
	case "", "text":
		var text string
		if err := sonic.Unmarshal(pr.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []chatMessage
		if err := sonic.Unmarshal(pr.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		var parts []string
		for _, m := range messages {
			if m.Type == "placeholder" || !strings.EqualFold(m.Role, "system") {
				continue
			}
			if content := strings.TrimSpace(m.Content); content != "" {
				parts = append(parts, content)
			}
		}
		if len(parts) == 0 {
			return "", errNoSystemMessage
		}
		return strings.Join(parts, "\n\n"), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", pr.Type)
	}
}

// mirrorPrompt replaces path atomically so readers never see a partial file.
func mirrorPrompt(path, text string) error {
	if path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".prompt-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
