package handler

import (
	"context"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/pipeline"
	"skill-gap/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type PipelineHandler struct {
	refresh *pipeline.RefreshPipeline
	workers int
}

func NewPipelineHandler(refresh *pipeline.RefreshPipeline, workers int) *PipelineHandler {
	return &PipelineHandler{refresh: refresh, workers: workers}
}

func (h *PipelineHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/refresh", h.TriggerRefresh)
	r.Get("/status", h.GetStatus)
}

// TriggerRefresh starts a background recompute. A second trigger while one is
// running is accepted but does nothing.
func (h *PipelineHandler) TriggerRefresh(c fiber.Ctx) error {
	if h.refresh == nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "pipeline unavailable", nil)
	}

	started := h.refresh.TryRun(context.Background(), pipeline.Params{ScoringWorkers: h.workers})
	return response.Success(c, fiber.StatusAccepted, response.MessageOK, map[string]bool{"started": started})
}

func (h *PipelineHandler) GetStatus(c fiber.Ctx) error {
	if h.refresh == nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "pipeline unavailable", nil)
	}

	st := h.refresh.Status()
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PipelineStatusResponse{
		State:      st.State,
		StartedAt:  st.StartedAt,
		FinishedAt: st.FinishedAt,
		Pairs:      st.Pairs,
		Failed:     st.Failed,
		Employees:  st.Employees,
	})
}
