package handler

import (
	"skill-gap/internal/delivery/http/dto"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/domain/training"
	"skill-gap/internal/pkg/response"
	"skill-gap/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type TrainingHandler struct {
	uc usecase.TrainingUsecase
}

func NewTrainingHandler(uc usecase.TrainingUsecase) *TrainingHandler {
	return &TrainingHandler{uc: uc}
}

func (h *TrainingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:employee_id/jobs/:job_id/training-path", h.GetTrainingPath)
}

func (h *TrainingHandler) GetTrainingPath(c fiber.Ctx) error {
	employeeID, err := uuid.Parse(c.Params("employee_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	path, err := h.uc.BuildPath(c.Context(), employeeID, jobID)
	if err != nil {
		return mapEngineUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.TrainingPathResponse{
		Match: matchResponse(path.Match),
		Plan: dto.TrainingPlanResponse{
			IntroCourses: courseResponses(path.Plan.IntroCourses),
			DeepCourses:  courseResponses(path.Plan.DeepCourses),
			IntroHours:   path.Plan.IntroHours,
			DeepHours:    path.Plan.DeepHours,
			IntroWeeks:   path.Plan.IntroWeeks,
			DeepWeeks:    path.Plan.DeepWeeks,
		},
	})
}

func courseResponses(courses []training.CourseRecord) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseResponse{
			ID:         c.ID,
			Skill:      c.Skill,
			Title:      c.Title,
			Hours:      c.Hours,
			Difficulty: c.Difficulty,
			Rating:     c.Rating,
		})
	}
	return out
}
