package service

import (
	"fmt"
	"strings"

	"edugen/internal/dto"
)

// System prompt templates, one per task category. User-supplied parameters
// are interpolated into a fixed template; the raw prompt always travels
// separately as the user message.

func AssignmentSystemPrompt(req *dto.AssignmentRequest) string {
	level := req.Level
	if level == "" {
		level = "high school"
	}
	subject := req.Subject
	if subject == "" {
		subject = "general studies"
	}
	return fmt.Sprintf(
		"You are an experienced %s teacher. Create a complete, well-structured assignment "+
			"for %s students on the topic the user provides. Include clear instructions, "+
			"numbered tasks, and grading criteria.",
		subject, level)
}

func LongAnswerSystemPrompt(req *dto.LongAnswerRequest) string {
	var sb strings.Builder
	sb.WriteString("You are an expert educator. Write a detailed, well-organized long-form answer " +
		"to the user's question, with an introduction, body paragraphs and a conclusion.")
	if req.WordCount > 0 {
		fmt.Fprintf(&sb, " Aim for approximately %d words.", req.WordCount)
	}
	if len(req.Subtopics) > 0 {
		fmt.Fprintf(&sb, " Make sure to cover these subtopics: %s.", strings.Join(req.Subtopics, ", "))
	}
	return sb.String()
}

func ShortAnswerSystemPrompt() string {
	return "You are a concise tutor. Answer the user's question accurately in 2-3 sentences. " +
		"Do not add introductions, caveats or follow-up questions."
}

func QuizSystemPrompt(req *dto.QuizRequest) string {
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	count := req.QuestionCount
	if count <= 0 {
		count = 5
	}
	quizType := req.QuizType
	if quizType == "" {
		quizType = "multiple-choice"
	}
	return fmt.Sprintf(
		"You are a quiz author. Create a %s quiz with %d %s questions on the topic the user "+
			"provides. Number each question and include the correct answer after each one.",
		difficulty, count, quizType)
}

func GrammarSystemPrompt(req *dto.GrammarRequest) string {
	prompt := "You are a careful proofreader. Fix all grammar, spelling and punctuation errors " +
		"in the user's text. Preserve the original meaning and return only the corrected text."
	if req.Style != "" {
		prompt += fmt.Sprintf(" Adjust the tone to be %s.", req.Style)
	}
	return prompt
}

func ChatSystemPrompt(req *dto.ChatRequest) string {
	level := req.StudentLevel
	if level == "" {
		level = "high school"
	}
	return fmt.Sprintf(
		"You are a friendly, patient tutor talking to a %s student. Explain things step by "+
			"step, ask guiding questions, and keep answers focused on the student's message.",
		level)
}

func GeneralSystemPrompt() string {
	return "You are a helpful educational assistant. Answer the user's request clearly and accurately."
}
