package handler

import (
	"edugen/internal/domain"
	"edugen/internal/dto"
	"edugen/internal/export"
	"edugen/internal/service"

	"github.com/gofiber/fiber/v2"
)

// DocumentExporter renders generated text into a downloadable document.
type DocumentExporter interface {
	Render(title, text string) ([]byte, error)
}

// GenerationHandler handles the content-generation HTTP endpoints
type GenerationHandler struct {
	service  service.GenerationService
	exporter DocumentExporter
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service service.GenerationService, exporter DocumentExporter) *GenerationHandler {
	return &GenerationHandler{
		service:  service,
		exporter: exporter,
	}
}

// GenerateAssignment godoc
// @Summary Generate an assignment
// @Description Generates a structured assignment for the given topic
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.AssignmentRequest true "Assignment parameters"
// @Param download query string false "Set to 'pdf' to download as document"
// @Success 200 {object} dto.GenerationResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-assignment [post]
func (h *GenerationHandler) GenerateAssignment(c *fiber.Ctx) error {
	var req dto.AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidRequestError("Request body must be valid JSON")
	}
	if req.Prompt == "" {
		return domain.NewInvalidRequestError("prompt is required")
	}

	result, err := h.service.Generate(c.Context(), req.Prompt, service.AssignmentSystemPrompt(&req), domain.TaskAssignment)
	if err != nil {
		return err
	}

	return h.respond(c, documentTitle("Assignment", req.Subject), result, true)
}

// GenerateLongAnswer godoc
// @Summary Generate a long-form answer
// @Description Generates a detailed long-form answer to the given question
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.LongAnswerRequest true "Long answer parameters"
// @Param download query string false "Set to 'pdf' to download as document"
// @Success 200 {object} dto.GenerationResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-long-answer [post]
func (h *GenerationHandler) GenerateLongAnswer(c *fiber.Ctx) error {
	var req dto.LongAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidRequestError("Request body must be valid JSON")
	}
	if req.Prompt == "" {
		return domain.NewInvalidRequestError("prompt is required")
	}

	result, err := h.service.Generate(c.Context(), req.Prompt, service.LongAnswerSystemPrompt(&req), domain.TaskLongAnswer)
	if err != nil {
		return err
	}

	return h.respond(c, "Long Answer", result, true)
}

// GenerateShortAnswer godoc
// @Summary Generate a short answer
// @Description Generates a 2-3 sentence answer; fails fast if the upstream call exceeds its deadline
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.ShortAnswerRequest true "Short answer parameters"
// @Param download query string false "Set to 'pdf' to download as document"
// @Success 200 {object} dto.GenerationResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 504 {object} middleware.ErrorResponse
// @Router /generate-short-answer [post]
func (h *GenerationHandler) GenerateShortAnswer(c *fiber.Ctx) error {
	var req dto.ShortAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidRequestError("Request body must be valid JSON")
	}
	if req.Prompt == "" {
		return domain.NewInvalidRequestError("prompt is required")
	}

	result, err := h.service.Generate(c.Context(), req.Prompt, service.ShortAnswerSystemPrompt(), domain.TaskShortAnswer)
	if err != nil {
		return err
	}

	return h.respond(c, "Short Answer", result, false)
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates a quiz with the requested difficulty, question count and type
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz parameters"
// @Param download query string false "Set to 'pdf' to download as document"
// @Success 200 {object} dto.GenerationResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate-quiz [post]
func (h *GenerationHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidRequestError("Request body must be valid JSON")
	}
	if req.Prompt == "" {
		return domain.NewInvalidRequestError("prompt is required")
	}

	result, err := h.service.Generate(c.Context(), req.Prompt, service.QuizSystemPrompt(&req), domain.TaskQuiz)
	if err != nil {
		return err
	}

	return h.respond(c, "Quiz", result, true)
}

// FixGrammar godoc
// @Summary Fix grammar
// @Description Corrects grammar, spelling and punctuation while preserving meaning
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GrammarRequest true "Text to correct"
// @Param download query string false "Set to 'pdf' to download as document"
// @Success 200 {object} dto.GenerationResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /fix-grammar [post]
func (h *GenerationHandler) FixGrammar(c *fiber.Ctx) error {
	var req dto.GrammarRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidRequestError("Request body must be valid JSON")
	}
	if req.Text == "" {
		return domain.NewInvalidRequestError("text is required")
	}

	result, err := h.service.Generate(c.Context(), req.Text, service.GrammarSystemPrompt(&req), domain.TaskGrammar)
	if err != nil {
		return err
	}

	return h.respond(c, "Corrected Text", result, true)
}

// Chat godoc
// @Summary Chat with the tutor
// @Description Continues a tutoring conversation, folding prior history into the exchange
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message and optional history"
// @Success 200 {object} dto.GenerationResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /chat [post]
func (h *GenerationHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidRequestError("Request body must be valid JSON")
	}
	if req.Message == "" {
		return domain.NewInvalidRequestError("message is required")
	}

	result, err := h.service.GenerateChat(c.Context(), req.Message, service.ChatSystemPrompt(&req), req.History)
	if err != nil {
		return err
	}

	return h.respond(c, "Chat Response", result, false)
}

// respond returns the generation result as JSON, or as a PDF attachment when
// the download=pdf query flag is present. The document is rendered fully
// before any header is written, so export failures still produce JSON errors.
func (h *GenerationHandler) respond(c *fiber.Ctx, title string, result *domain.GenerationResult, withStats bool) error {
	if c.Query("download") == "pdf" {
		document, err := h.exporter.Render(title, result.Text)
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(title)+`"`)
		return c.Send(document)
	}

	resp := dto.GenerationResponse{
		ID:        result.ID,
		Text:      result.Text,
		ModelUsed: result.ModelUsed,
		Tokens:    result.Tokens,
		Timestamp: result.Timestamp,
	}
	if withStats {
		resp.Stats = service.ComputeTextStats(result.Text)
	}
	return c.JSON(resp)
}

func documentTitle(base, qualifier string) string {
	if qualifier == "" {
		return base
	}
	return base + " " + qualifier
}
