package langfuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptServer(t *testing.T, hits *int32, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		assert.Equal(t, "/api/public/v2/prompts/wellness-reflection", r.URL.Path)
		assert.Equal(t, "production", r.URL.Query().Get("label"))
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "pk:sk", user+":"+pass)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func remoteConfig(baseURL string) PromptLoaderConfig {
	return PromptLoaderConfig{
		BaseURL:     baseURL,
		PublicKey:   "pk",
		SecretKey:   "sk",
		PromptName:  "wellness-reflection",
		PromptLabel: "production",
	}
}

func TestLoadPrompt_TextPromptIsMirrored(t *testing.T) {
	var hits int32
	srv := promptServer(t, &hits, http.StatusOK, `{"type":"text","version":3,"prompt":"Be kind."}`)
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	cfg.FallbackPath = filepath.Join(t.TempDir(), "prompts", "system.txt")

	prompt, err := LoadPrompt(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, Prompt{Text: "Be kind.", Version: 3, Source: PromptSourceLangfuse}, prompt)

	saved, err := os.ReadFile(cfg.FallbackPath)
	require.NoError(t, err)
	assert.Equal(t, "Be kind.", string(saved))
}

func TestLoadPrompt_ChatPromptKeepsSystemMessages(t *testing.T) {
	var hits int32
	srv := promptServer(t, &hits, http.StatusOK, `{"type":"chat","version":1,"prompt":[
		{"type":"chatmessage","role":"system","content":"Be kind."},
		{"type":"placeholder","name":"history"},
		{"type":"chatmessage","role":"user","content":"ignored"},
		{"type":"chatmessage","role":"system","content":"Never diagnose."}
	]}`)
	defer srv.Close()

	prompt, err := LoadPrompt(context.Background(), remoteConfig(srv.URL))
	require.NoError(t, err)
	assert.Equal(t, "Be kind.\n\nNever diagnose.", prompt.Text)
}

func TestLoadPrompt_ChatPromptWithoutSystemMessage(t *testing.T) {
	var hits int32
	srv := promptServer(t, &hits, http.StatusOK, `{"type":"chat","prompt":[{"type":"chatmessage","role":"user","content":"hi"}]}`)
	defer srv.Close()

	_, err := LoadPrompt(context.Background(), remoteConfig(srv.URL))
	assert.ErrorIs(t, err, errNoSystemMessage)
}

func TestLoadPrompt_ServerErrorFallsBackToFile(t *testing.T) {
	var hits int32
	srv := promptServer(t, &hits, http.StatusInternalServerError, `{"message":"down"}`)
	defer srv.Close()

	cfg := remoteConfig(srv.URL)
	cfg.FallbackPath = filepath.Join(t.TempDir(), "system.txt")
	require.NoError(t, os.WriteFile(cfg.FallbackPath, []byte("from disk"), 0o600))

	prompt, err := LoadPrompt(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, Prompt{Text: "from disk", Source: PromptSourceFile}, prompt)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestLoadPrompt_FileOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.txt")
	require.NoError(t, os.WriteFile(path, []byte("from disk"), 0o600))

	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{FallbackPath: path})
	require.NoError(t, err)
	assert.Equal(t, "from disk", prompt.Text)
}

func TestLoadPrompt_NothingConfigured(t *testing.T) {
	_, err := LoadPrompt(context.Background(), PromptLoaderConfig{})
	assert.ErrorIs(t, err, errPromptNotConfigured)
}

func TestPromptCache_LoadsOncePerTTL(t *testing.T) {
	var hits int32
	srv := promptServer(t, &hits, http.StatusOK, `{"type":"text","version":2,"prompt":"managed"}`)
	defer srv.Close()

	pc := NewPromptCache(remoteConfig(srv.URL), "fallback", time.Minute)

	ctx := context.Background()
	assert.Equal(t, "managed", pc.SystemPrompt(ctx))
	assert.Equal(t, "managed", pc.SystemPrompt(ctx))
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	pc.Invalidate()
	assert.Equal(t, "managed", pc.SystemPrompt(ctx))
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestPromptCache_Fallback(t *testing.T) {
	pc := NewPromptCache(PromptLoaderConfig{}, "fallback", 0)

	assert.Equal(t, "fallback", pc.SystemPrompt(context.Background()))
}

func TestPromptCache_BlankPromptUsesFallback(t *testing.T) {
	pc := NewPromptCache(PromptLoaderConfig{PromptName: "x"}, "fallback", time.Minute)
	pc.load = func(context.Context, PromptLoaderConfig) (Prompt, error) {
		return Prompt{Text: "   ", Source: PromptSourceLangfuse}, nil
	}

	assert.Equal(t, "fallback", pc.SystemPrompt(context.Background()))
}
