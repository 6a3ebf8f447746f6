package openrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"edugen/internal/config"
	"edugen/internal/domain"
	"edugen/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Env: "test", Level: "info"}); err != nil {
		log.Fatalf("Failed to initialize logger for openrouter tests: %v", err)
	}
	os.Exit(m.Run())
}

func testProfile(key string) domain.TaskProfile {
	return domain.TaskProfile{
		Model:       "openai/gpt-4o-mini",
		APIKey:      key,
		Temperature: 0.3,
		MaxTokens:   300,
	}
}

func newTestClient(serverURL, key string) *Client {
	profiles := map[domain.TaskType]domain.TaskProfile{
		domain.TaskShortAnswer: testProfile(key),
	}
	return NewClient(serverURL+"/v1", profiles)
}

func completionJSON(content string, totalTokens int) map[string]interface{} {
	return map[string]interface{}{
		"id":     "gen-test",
		"object": "chat.completion",
		"model":  "openai/gpt-4o-mini",
		"choices": []map[string]interface{}{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]int{"total_tokens": totalTokens},
	}
}

func errorJSON(message string) map[string]interface{} {
	return map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
			"type":    "invalid_request_error",
		},
	}
}

func TestCompleteSuccess(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionJSON("Photosynthesis converts light into chemical energy.", 42))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "sk-test")
	text, tokens, err := client.Complete(context.Background(), testProfile("sk-test"), []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "Answer in 2-3 sentences."},
		{Role: domain.RoleUser, Content: "What is photosynthesis?"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis converts light into chemical energy.", text)
	assert.Equal(t, 42, tokens)
	assert.Equal(t, "Bearer sk-test", gotAuth)

	// The exchange carries exactly the system and user messages, in order
	messages := gotBody["messages"].([]interface{})
	require.Len(t, messages, 2)
	first := messages[0].(map[string]interface{})
	second := messages[1].(map[string]interface{})
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "user", second["role"])

	assert.Equal(t, "openai/gpt-4o-mini", gotBody["model"])
	assert.InDelta(t, 0.3, gotBody["temperature"], 0.001)
	assert.Equal(t, float64(300), gotBody["max_tokens"])
}

func TestCompleteEmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionJSON("", 0))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "sk-test")
	_, _, err := client.Complete(context.Background(), testProfile("sk-test"), []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "anything"},
	})

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeEmptyModelResponse, domainErr.Code)
}

func TestCompleteStatusTranslation(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		expectedCode domain.ErrorCode
	}{
		{"Unauthorized", http.StatusUnauthorized, domain.CodeUnauthorized},
		{"Forbidden", http.StatusForbidden, domain.CodeUnauthorized},
		{"RateLimited", http.StatusTooManyRequests, domain.CodeRateLimited},
		{"ModelNotFound", http.StatusNotFound, domain.CodeModelNotFound},
		{"ServerError", http.StatusInternalServerError, domain.CodeUpstreamUnavailable},
		{"BadGateway", http.StatusBadGateway, domain.CodeUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(errorJSON("upstream says no"))
			}))
			defer server.Close()

			client := newTestClient(server.URL, "sk-test")
			_, _, err := client.Complete(context.Background(), testProfile("sk-test"), []domain.ChatMessage{
				{Role: domain.RoleUser, Content: "anything"},
			})

			var domainErr *domain.DomainError
			require.True(t, errors.As(err, &domainErr), "expected a domain error, got %v", err)
			assert.Equal(t, tt.expectedCode, domainErr.Code)
			// Upstream payload text stays out of the client-facing message
			assert.NotContains(t, domainErr.Message, "upstream says no")
		})
	}
}

func TestCompleteDeadlineExceeded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionJSON("too late", 1))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "sk-test")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := client.Complete(ctx, testProfile("sk-test"), []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "anything"},
	})

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeTimeout, domainErr.Code)
}

func TestCompleteUnknownCredential(t *testing.T) {
	client := newTestClient("http://localhost:0", "sk-test")

	_, _, err := client.Complete(context.Background(), testProfile("sk-other"), []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "anything"},
	})

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeInternal, domainErr.Code)
}
