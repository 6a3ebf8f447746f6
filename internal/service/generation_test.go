package service

import (
	"context"
	"errors"
	"log"
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
		log.Fatalf("Failed to initialize logger for service tests: %v", err)
	}
	os.Exit(m.Run())
}

// fakeCompletionClient records the call and returns canned values.
type fakeCompletionClient struct {
	gotProfile  domain.TaskProfile
	gotMessages []domain.ChatMessage
	hadDeadline bool

	text   string
	tokens int
	err    error
}

func (f *fakeCompletionClient) Complete(ctx context.Context, profile domain.TaskProfile, messages []domain.ChatMessage) (string, int, error) {
	f.gotProfile = profile
	f.gotMessages = messages
	_, f.hadDeadline = ctx.Deadline()
	if f.err != nil {
		return "", 0, f.err
	}
	return f.text, f.tokens, nil
}

func testProfiles() map[domain.TaskType]domain.TaskProfile {
	return map[domain.TaskType]domain.TaskProfile{
		domain.TaskShortAnswer: {Model: "meta-llama/llama-3.1-8b-instruct", APIKey: "sk-short", Temperature: 0.3, MaxTokens: 300, Timeout: 5 * time.Second},
		domain.TaskLongAnswer:  {Model: "deepseek/deepseek-chat-v3-0324:free", APIKey: "sk-long", Temperature: 0.7, MaxTokens: 4000},
		domain.TaskChat:        {Model: "deepseek/deepseek-chat-v3-0324:free", APIKey: "sk-chat", Temperature: 0.6, MaxTokens: 1000},
	}
}

func TestGenerateSelectsProfileDeterministically(t *testing.T) {
	client := &fakeCompletionClient{text: "answer", tokens: 10}
	svc := NewGenerationService(client, testProfiles())

	result, err := svc.Generate(context.Background(), "What is gravity?", "Answer briefly.", domain.TaskShortAnswer)
	require.NoError(t, err)

	assert.Equal(t, "meta-llama/llama-3.1-8b-instruct", client.gotProfile.Model)
	assert.Equal(t, "sk-short", client.gotProfile.APIKey)
	assert.InDelta(t, 0.3, client.gotProfile.Temperature, 0.001)
	assert.Equal(t, 300, client.gotProfile.MaxTokens)
	assert.Equal(t, "meta-llama/llama-3.1-8b-instruct", result.ModelUsed)
}

func TestGenerateBuildsSystemUserExchange(t *testing.T) {
	client := &fakeCompletionClient{text: "answer"}
	svc := NewGenerationService(client, testProfiles())

	_, err := svc.Generate(context.Background(), "user prompt", "system context", domain.TaskLongAnswer)
	require.NoError(t, err)

	require.Len(t, client.gotMessages, 2)
	assert.Equal(t, domain.RoleSystem, client.gotMessages[0].Role)
	assert.Equal(t, "system context", client.gotMessages[0].Content)
	assert.Equal(t, domain.RoleUser, client.gotMessages[1].Role)
	assert.Equal(t, "user prompt", client.gotMessages[1].Content)
}

func TestGenerateUnknownTaskType(t *testing.T) {
	client := &fakeCompletionClient{text: "answer"}
	svc := NewGenerationService(client, testProfiles())

	_, err := svc.Generate(context.Background(), "prompt", "context", domain.TaskQuiz)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeUnknownTaskType, domainErr.Code)
	// No upstream call is made for an unknown task type
	assert.Empty(t, client.gotMessages)
}

func TestGenerateAppliesFastPathDeadline(t *testing.T) {
	client := &fakeCompletionClient{text: "answer"}
	svc := NewGenerationService(client, testProfiles())

	_, err := svc.Generate(context.Background(), "prompt", "context", domain.TaskShortAnswer)
	require.NoError(t, err)
	assert.True(t, client.hadDeadline, "short-answer calls must carry a deadline")

	_, err = svc.Generate(context.Background(), "prompt", "context", domain.TaskLongAnswer)
	require.NoError(t, err)
	assert.False(t, client.hadDeadline, "long-answer calls carry no fast-path deadline")
}

func TestGeneratePassesThroughClientError(t *testing.T) {
	client := &fakeCompletionClient{err: domain.NewRateLimitedError(nil)}
	svc := NewGenerationService(client, testProfiles())

	_, err := svc.Generate(context.Background(), "prompt", "context", domain.TaskLongAnswer)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeRateLimited, domainErr.Code)
}

func TestGenerateNormalizesResult(t *testing.T) {
	client := &fakeCompletionClient{text: "the text", tokens: 99}
	svc := NewGenerationService(client, testProfiles())

	before := time.Now().UTC()
	result, err := svc.Generate(context.Background(), "prompt", "context", domain.TaskLongAnswer)
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "the text", result.Text)
	assert.Equal(t, 99, result.Tokens)
	assert.False(t, result.Timestamp.Before(before))
}

func TestGenerateChatFoldsHistory(t *testing.T) {
	client := &fakeCompletionClient{text: "reply"}
	svc := NewGenerationService(client, testProfiles())

	history := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "first question"},
		{Role: domain.RoleAssistant, Content: "first answer"},
	}
	_, err := svc.GenerateChat(context.Background(), "second question", "tutor persona", history)
	require.NoError(t, err)

	require.Len(t, client.gotMessages, 4)
	assert.Equal(t, domain.RoleSystem, client.gotMessages[0].Role)
	assert.Equal(t, "first question", client.gotMessages[1].Content)
	assert.Equal(t, "first answer", client.gotMessages[2].Content)
	assert.Equal(t, domain.RoleUser, client.gotMessages[3].Role)
	assert.Equal(t, "second question", client.gotMessages[3].Content)

	assert.Equal(t, "sk-chat", client.gotProfile.APIKey)
}
