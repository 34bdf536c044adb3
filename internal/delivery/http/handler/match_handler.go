package handler

import (
	"errors"

	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/domain/matching"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:employee_id/jobs/:job_id/match", h.GetMatch)
	r.Get("/:employee_id/matches", h.GetMatches)
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.ScoreMatch(c.Context(), employeeID, jobID)
	if err != nil {
		return mapEngineUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, matchResponse(res))
}

func (h *MatchHandler) GetMatches(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	results, err := h.uc.ScoreEmployee(c.Context(), employeeID)
	if err != nil {
		return mapEngineUsecaseError(err)
	}

	out := make([]dto.MatchResultResponse, 0, len(results))
	for _, res := range results {
		out = append(out, matchResponse(res))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func matchResponse(res matching.MatchResult) dto.MatchResultResponse {
	return dto.MatchResultResponse{
		EmployeeID:         res.EmployeeID,
		JobID:              res.JobID,
		SkillOverlap:       res.SkillOverlap,
		EducationMatch:     res.EducationMatch,
		ExperienceScore:    res.ExperienceScore,
		PositionSimilarity: res.PositionSimilarity,
		IntentScore:        res.IntentScore,
		MatchScore:         res.MatchScore,
		MatchMark:          res.MatchMark,
		MatchedSkills:      res.MatchedSkills,
		MissingSkills:      res.MissingSkills,
	}
}

func mapEngineUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
