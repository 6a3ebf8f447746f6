package openrouter

import (
	"context"
	"errors"
	"net/http"

	"edugen/internal/domain"
	"edugen/internal/logger"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Client issues chat-completion calls against OpenRouter's OpenAI-compatible
// API. One underlying client exists per distinct credential; they are built
// once at startup and injected, never held as package-level singletons.
type Client struct {
	baseURL string
	clients map[string]*openai.Client
}

// NewClient builds completion clients for every distinct credential found in
// the task profiles.
func NewClient(baseURL string, profiles map[domain.TaskType]domain.TaskProfile) *Client {
	clients := make(map[string]*openai.Client)
	for _, profile := range profiles {
		if _, ok := clients[profile.APIKey]; ok {
			continue
		}
		cfg := openai.DefaultConfig(profile.APIKey)
		cfg.BaseURL = baseURL
		clients[profile.APIKey] = openai.NewClientWithConfig(cfg)
	}
	return &Client{baseURL: baseURL, clients: clients}
}

// Complete implements domain.CompletionClient. It sends a single completion
// request and normalizes the outcome: response text plus token usage on
// success, a typed domain error otherwise. The raw upstream payload never
// travels further than the log line here.
func (c *Client) Complete(ctx context.Context, profile domain.TaskProfile, messages []domain.ChatMessage) (string, int, error) {
	client, ok := c.clients[profile.APIKey]
	if !ok {
		// Profiles added after startup have no client; treat as a config gap.
		return "", 0, domain.NewInternalError("no completion client for credential", nil)
	}

	req := openai.ChatCompletionRequest{
		Model:       profile.Model,
		Messages:    toOpenAIMessages(messages),
		Temperature: profile.Temperature,
		MaxTokens:   profile.MaxTokens,
	}

	resp, err := client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", 0, c.translateError(profile.Model, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		logger.Get().Warn("Upstream returned no content",
			zap.String("model", profile.Model),
		)
		return "", 0, domain.NewEmptyModelResponseError(profile.Model)
	}

	return resp.Choices[0].Message.Content, resp.Usage.TotalTokens, nil
}

// translateError maps upstream failures into the domain taxonomy. Status
// codes come from go-openai's typed APIError; anything without a status is a
// transport-level failure.
func (c *Client) translateError(model string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		logger.Get().Error("Upstream completion call timed out",
			zap.String("model", model),
		)
		return domain.NewTimeoutError(err).WithContext("model", model)
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	if errors.As(err, &apiErr) {
		status = apiErr.HTTPStatusCode
	} else if errors.As(err, &reqErr) {
		status = reqErr.HTTPStatusCode
	}

	if status != 0 {
		logger.Get().Error("Upstream API error",
			zap.String("model", model),
			zap.Int("upstream_status", status),
			zap.Error(err),
		)
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return domain.NewUnauthorizedError(err)
		case http.StatusTooManyRequests:
			return domain.NewRateLimitedError(err)
		case http.StatusNotFound:
			return domain.NewModelNotFoundError(model, err)
		default:
			return domain.NewUpstreamUnavailableError(err)
		}
	}

	logger.Get().Error("Upstream transport failure",
		zap.String("model", model),
		zap.Error(err),
	)
	return domain.NewUpstreamUnavailableError(err)
}

func toOpenAIMessages(messages []domain.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		switch role {
		case domain.RoleSystem:
			role = openai.ChatMessageRoleSystem
		case domain.RoleAssistant:
			role = openai.ChatMessageRoleAssistant
		default:
			role = openai.ChatMessageRoleUser
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}

var _ domain.CompletionClient = (*Client)(nil)
