package service

import (
	"context"
	"time"

	"edugen/internal/domain"
	"edugen/internal/logger"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// GenerationService maps a task type to its generation profile, invokes the
// upstream completion API and normalizes the result.
type GenerationService interface {
	// Generate issues a two-message (system + user) completion for the task.
	Generate(ctx context.Context, prompt, systemContext string, taskType domain.TaskType) (*domain.GenerationResult, error)
	// GenerateChat folds prior conversation turns between the system context
	// and the new user message.
	GenerateChat(ctx context.Context, message, systemContext string, history []domain.ChatMessage) (*domain.GenerationResult, error)
	// Profiles exposes the task table for the health report.
	Profiles() map[domain.TaskType]domain.TaskProfile
}

// generationService implements GenerationService
type generationService struct {
	client   domain.CompletionClient
	profiles map[domain.TaskType]domain.TaskProfile
}

// NewGenerationService creates a new instance of generationService. The
// profile table and completion client are injected; the service itself keeps
// no mutable state.
func NewGenerationService(client domain.CompletionClient, profiles map[domain.TaskType]domain.TaskProfile) GenerationService {
	return &generationService{
		client:   client,
		profiles: profiles,
	}
}

// Generate implements GenerationService
func (s *generationService) Generate(ctx context.Context, prompt, systemContext string, taskType domain.TaskType) (*domain.GenerationResult, error) {
	messages := []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: systemContext},
		{Role: domain.RoleUser, Content: prompt},
	}
	return s.complete(ctx, taskType, messages)
}

// GenerateChat implements GenerationService
func (s *generationService) GenerateChat(ctx context.Context, message, systemContext string, history []domain.ChatMessage) (*domain.GenerationResult, error) {
	messages := make([]domain.ChatMessage, 0, len(history)+2)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: systemContext})
	messages = append(messages, history...)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: message})
	return s.complete(ctx, domain.TaskChat, messages)
}

func (s *generationService) Profiles() map[domain.TaskType]domain.TaskProfile {
	return s.profiles
}

func (s *generationService) complete(ctx context.Context, taskType domain.TaskType, messages []domain.ChatMessage) (*domain.GenerationResult, error) {
	profile, ok := s.profiles[taskType]
	if !ok {
		return nil, domain.NewUnknownTaskTypeError(string(taskType))
	}

	// Fast-path deadline for tasks that carry one (short answers).
	if profile.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, profile.Timeout)
		defer cancel()
	}

	text, tokens, err := s.client.Complete(ctx, profile, messages)
	if err != nil {
		logger.Get().Error("Generation failed",
			zap.String("task_type", string(taskType)),
			zap.String("model", profile.Model),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Info("Generation completed",
		zap.String("task_type", string(taskType)),
		zap.String("model", profile.Model),
		zap.Int("tokens", tokens),
	)

	return &domain.GenerationResult{
		ID:        ulid.Make().String(),
		Text:      text,
		ModelUsed: profile.Model,
		Tokens:    tokens,
		Timestamp: time.Now().UTC(),
	}, nil
}
