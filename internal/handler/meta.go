package handler

import (
	"edugen/internal/domain"
	"edugen/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const serviceVersion = "1.0.0"

// Endpoints lists every route the gateway serves; it backs the index page
// and the not-found response.
func Endpoints() []dto.EndpointInfo {
	return []dto.EndpointInfo{
		{Method: fiber.MethodPost, Path: "/generate-assignment"},
		{Method: fiber.MethodPost, Path: "/generate-long-answer"},
		{Method: fiber.MethodPost, Path: "/generate-short-answer"},
		{Method: fiber.MethodPost, Path: "/generate-quiz"},
		{Method: fiber.MethodPost, Path: "/fix-grammar"},
		{Method: fiber.MethodPost, Path: "/chat"},
		{Method: fiber.MethodGet, Path: "/health"},
		{Method: fiber.MethodGet, Path: "/"},
	}
}

// Index godoc
// @Summary List available endpoints
// @Tags meta
// @Produce json
// @Success 200 {object} dto.IndexResponse
// @Router / [get]
func (h *GenerationHandler) Index(c *fiber.Ctx) error {
	return c.JSON(dto.IndexResponse{
		Service:   "edugen",
		Version:   serviceVersion,
		Endpoints: Endpoints(),
	})
}

// Health godoc
// @Summary Service health
// @Description Reports the configured model per task category
// @Tags meta
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *GenerationHandler) Health(c *fiber.Ctx) error {
	profiles := h.service.Profiles()

	tasks := make([]dto.TaskStatus, 0, len(profiles))
	for _, taskType := range domain.AllTaskTypes() {
		profile, ok := profiles[taskType]
		tasks = append(tasks, dto.TaskStatus{
			Task:       string(taskType),
			Model:      profile.Model,
			Configured: ok && profile.APIKey != "",
		})
	}

	return c.JSON(dto.HealthResponse{
		Status: "ok",
		Tasks:  tasks,
	})
}

// NotFound is the terminal handler for unmatched routes.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.NotFoundResponse{
		Error:     "Endpoint not found",
		Endpoints: Endpoints(),
	})
}
