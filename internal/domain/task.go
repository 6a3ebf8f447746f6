package domain

import (
	"time"
)

// TaskType is the category of content being generated. It determines the
// model, credential, temperature and token budget used for the upstream call.
type TaskType string

const (
	TaskAssignment  TaskType = "assignment"
	TaskLongAnswer  TaskType = "long-answer"
	TaskShortAnswer TaskType = "short-answer"
	TaskQuiz        TaskType = "quiz"
	TaskGrammar     TaskType = "grammar"
	TaskChat        TaskType = "chat"
	TaskGeneral     TaskType = "general"
)

// AllTaskTypes lists every task category the gateway serves, in a stable order
// used by the health report and startup validation.
func AllTaskTypes() []TaskType {
	return []TaskType{
		TaskAssignment,
		TaskLongAnswer,
		TaskShortAnswer,
		TaskQuiz,
		TaskGrammar,
		TaskChat,
		TaskGeneral,
	}
}

// Valid reports whether t is one of the known task categories.
func (t TaskType) Valid() bool {
	switch t {
	case TaskAssignment, TaskLongAnswer, TaskShortAnswer, TaskQuiz, TaskGrammar, TaskChat, TaskGeneral:
		return true
	}
	return false
}

func (t TaskType) String() string {
	return string(t)
}

// TaskProfile is the generation tuple looked up per task type: which model to
// call, with which credential, and the sampling/budget knobs for the call.
// A zero Timeout means the caller's deadline applies unchanged.
type TaskProfile struct {
	Model       string
	APIKey      string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// ChatMessage is one turn of conversation history supplied by the client.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationResult is the normalized outcome of one upstream completion call.
// Immutable once produced; it lives only for the duration of the request.
type GenerationResult struct {
	ID        string
	Text      string
	ModelUsed string
	Tokens    int
	Timestamp time.Time
}
