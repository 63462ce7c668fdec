package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/wellness-tracker/internal/domain"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient_NoKey(t *testing.T) {
	c := NewOpenAIClient("", "", nil)
	assert.Nil(t, c)

	_, err := c.GenerateInsights(context.Background(), &domain.InsightsContext{})
	assert.True(t, errors.Is(err, ErrOpenAIUnavailable))
}

func TestParseReflection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		summary string
	}{
		{
			name:    "plain JSON",
			content: `{"summary":"Mostly calm.","observations":["a"],"suggestions":["b"]}`,
			summary: "Mostly calm.",
		},
		{
			name:    "fenced JSON",
			content: "```json\n{\"summary\":\"Steady week.\",\"observations\":[],\"suggestions\":[]}\n```",
			summary: "Steady week.",
		},
		{
			name:    "not JSON",
			content: "You seem calm!",
			wantErr: true,
		},
		{
			name:    "missing summary",
			content: `{"observations":["a"]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ParseReflection(tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrOpenAIResponse))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.summary, out.Summary)
			assert.NotNil(t, out.Observations)
			assert.NotNil(t, out.Suggestions)
		})
	}
}

type recordingPrompt struct {
	calls int
}

func (p *recordingPrompt) SystemPrompt(context.Context) string {
	p.calls++
	return "managed prompt"
}

func TestGenerateInsights_UsesPromptSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "{\"summary\":\"Calm start to the year.\",\"observations\":[\"Energy is steady\"],\"suggestions\":[\"Keep walking\"]}"}
			}]
		}`))
	}))
	defer srv.Close()

	prompts := &recordingPrompt{}
	c := NewOpenAIClient("sk-test", "", prompts, option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	require.NotNil(t, c)

	out, err := c.GenerateInsights(context.Background(), &domain.InsightsContext{})
	require.NoError(t, err)
	assert.Equal(t, "Calm start to the year.", out.Summary)
	assert.Equal(t, []string{"Energy is steady"}, out.Observations)
	assert.Equal(t, 1, prompts.calls)
}

func TestGenerateInsights_RequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient("sk-test", "gpt-4o", nil, option.WithBaseURL(srv.URL), option.WithMaxRetries(0))

	_, err := c.GenerateInsights(context.Background(), &domain.InsightsContext{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpenAIRequest))
}
