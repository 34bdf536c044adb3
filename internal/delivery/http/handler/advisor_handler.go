package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/domain/advisor"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AdvisorHandler struct {
	uc usecase.AdvisorUsecase
}

func NewAdvisorHandler(uc usecase.AdvisorUsecase) *AdvisorHandler {
	return &AdvisorHandler{uc: uc}
}

func (h *AdvisorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:employee_id/advisory", h.GetAdvisory)
}

func (h *AdvisorHandler) GetAdvisory(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	report, err := h.uc.Advise(c.Context(), employeeID)
	if err != nil {
		return mapEngineUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, advisoryResponse(report))
}

func advisoryResponse(r advisor.AdvisoryReport) dto.AdvisoryResponse {
	mentors := make([]dto.MentorResponse, 0, len(r.Mentors))
	for _, m := range r.Mentors {
		mentors = append(mentors, dto.MentorResponse{
			EmployeeID:   m.EmployeeID,
			Distance:     m.Distance,
			SharedSkills: m.SharedSkills,
			Cluster:      m.Cluster,
		})
	}

	gaps := make([]dto.DomainGapResponse, 0, len(r.Gaps))
	for _, g := range r.Gaps {
		gaps = append(gaps, dto.DomainGapResponse{
			Domain:  g.Domain,
			Present: g.Present,
			Missing: g.Missing,
			Courses: courseResponses(g.Courses),
		})
	}

	return dto.AdvisoryResponse{
		EmployeeID:    r.EmployeeID,
		Found:         r.Found,
		Cluster:       r.Cluster,
		ClusterSkills: r.ClusterSkills,
		TopSkills:     r.TopSkills,
		Mentors:       mentors,
		Gaps:          gaps,
		Narrative:     r.Narrative,
	}
}
