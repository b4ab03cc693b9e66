package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beamx-scorecard/backend/internal/scoring"
)

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(body)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{})
	require.ErrorIs(t, err, ErrDisabled)
}

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.True(t, client.Enabled())
	assert.Equal(t, "gpt-4.1-mini", client.model)
	assert.Equal(t, "https://api.openai.com/v1", client.baseURL)
	assert.Equal(t, 0.7, client.temperature)
	assert.Equal(t, 500, client.maxTokens)
}

func TestAdviseSendsPromptAndReturnsNarrative(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody("  Invest in retention tooling.  ")))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "test-key", Model: "test-model", BaseURL: srv.URL, MaxTokens: 300})
	require.NoError(t, err)

	narrative, err := client.Advise(context.Background(), AdvisoryInput{
		Industry: "logistics",
		Scores:   scoring.SubScores{Financial: 9, Growth: 7, Digital: 8, Operations: 6},
	})
	require.NoError(t, err)
	assert.Equal(t, "Invest in retention tooling.", narrative)

	assert.Equal(t, "test-model", captured["model"])
	assert.Equal(t, float64(300), captured["max_tokens"])
	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	user := messages[1].(map[string]any)["content"].(string)
	assert.Contains(t, user, "logistics")
	assert.Contains(t, user, "Financial Health: 9/11")
	assert.Contains(t, user, "Operational Efficiency: 6/11")
}

func TestAdviseSanitizesMarkup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(completionBody("<script>alert(1)</script>Focus on margins.")))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	narrative, err := client.Advise(context.Background(), AdvisoryInput{Industry: "retail"})
	require.NoError(t, err)
	assert.NotContains(t, narrative, "<script>")
	assert.Contains(t, narrative, "Focus on margins.")
}

func TestAdviseFailsOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Advise(context.Background(), AdvisoryInput{Industry: "retail"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestAdviseFailsOnEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Advise(context.Background(), AdvisoryInput{Industry: "retail"})
	require.Error(t, err)
}

func TestAdviseFailsOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Advise(context.Background(), AdvisoryInput{Industry: "retail"})
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrDisabled))
}
