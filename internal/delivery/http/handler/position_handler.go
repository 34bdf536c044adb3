package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PositionHandler struct {
	uc usecase.PositionUsecase
}

func NewPositionHandler(uc usecase.PositionUsecase) *PositionHandler {
	return &PositionHandler{uc: uc}
}

func (h *PositionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.GetPositions)
}

func (h *PositionHandler) GetPositions(c fiber.Ctx) error {
	positions, err := h.uc.PositionMap(c.Context())
	if err != nil {
		return mapEngineUsecaseError(err)
	}

	out := make([]dto.PositionResponse, 0, len(positions))
	for _, p := range positions {
		weights := make([]dto.SkillWeightResponse, 0, len(p.TopSkills))
		for _, sw := range p.TopSkills {
			weights = append(weights, dto.SkillWeightResponse{Token: sw.Token, Weight: sw.Weight})
		}
		out = append(out, dto.PositionResponse{
			EmployeeID: p.EmployeeID,
			X:          p.X,
			Y:          p.Y,
			Cluster:    p.Cluster,
			TopSkills:  weights,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
