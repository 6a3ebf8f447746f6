package dto

import (
	"time"

	"edugen/internal/domain"
)

// AssignmentRequest is the request body for POST /generate-assignment
// @Description Assignment generation request
type AssignmentRequest struct {
	Prompt  string `json:"prompt"`
	Level   string `json:"level,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// LongAnswerRequest is the request body for POST /generate-long-answer
type LongAnswerRequest struct {
	Prompt    string   `json:"prompt"`
	WordCount int      `json:"wordCount,omitempty"`
	Subtopics []string `json:"subtopics,omitempty"`
}

// ShortAnswerRequest is the request body for POST /generate-short-answer
type ShortAnswerRequest struct {
	Prompt string `json:"prompt"`
}

// QuizRequest is the request body for POST /generate-quiz
type QuizRequest struct {
	Prompt        string `json:"prompt"`
	Difficulty    string `json:"difficulty,omitempty"`
	QuestionCount int    `json:"questionCount,omitempty"`
	QuizType      string `json:"quizType,omitempty"`
}

// GrammarRequest is the request body for POST /fix-grammar
type GrammarRequest struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

// ChatRequest is the request body for POST /chat
type ChatRequest struct {
	Message      string               `json:"message"`
	History      []domain.ChatMessage `json:"history,omitempty"`
	StudentLevel string               `json:"studentLevel,omitempty"`
}

// TextStats carries derived metrics computed by plain string splitting.
type TextStats struct {
	WordCount          int `json:"wordCount"`
	SentenceCount      int `json:"sentenceCount"`
	ReadingTimeMinutes int `json:"readingTimeMinutes"`
}

// GenerationResponse is the JSON body returned by every generation endpoint.
// @Description Normalized generation result
type GenerationResponse struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	ModelUsed string     `json:"modelUsed"`
	Tokens    int        `json:"tokens,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
	Stats     *TextStats `json:"stats,omitempty"`
}

// TaskStatus is one entry of the health report, per configured task category.
type TaskStatus struct {
	Task       string `json:"task"`
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string       `json:"status"`
	Tasks  []TaskStatus `json:"tasks"`
}

// EndpointInfo describes one route for the index and not-found listings.
type EndpointInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// IndexResponse is the body of GET /
type IndexResponse struct {
	Service   string         `json:"service"`
	Version   string         `json:"version"`
	Endpoints []EndpointInfo `json:"endpoints"`
}

// NotFoundResponse is returned for unmatched routes.
type NotFoundResponse struct {
	Error     string         `json:"error"`
	Endpoints []EndpointInfo `json:"endpoints"`
}
