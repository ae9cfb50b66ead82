package handler

import (
	"survey_client/internal/surveys/repository"
	"survey_client/internal/surveys/service"
	"survey_client/internal/surveys/transport"
	"survey_client/platform/httpkit"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/surveys", h.List)
}

// List answers 204 when there is nothing to show.
func (h *Handler) List(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	surveys, err := h.svc.List(c.Request.Context(), identity.AccountID())
	if httpkit.HandleError(c, err) {
		return
	}
	if len(surveys) == 0 {
		httpkit.NoContent(c)
		return
	}

	response := make([]transport.SurveyResponse, 0, len(surveys))
	for _, survey := range surveys {
		response = append(response, toResponse(survey))
	}
	httpkit.OK(c, response)
}

func toResponse(survey repository.Survey) transport.SurveyResponse {
	answers := make([]transport.AnswerResponse, 0, len(survey.Answers))
	for _, answer := range survey.Answers {
		answers = append(answers, transport.AnswerResponse{Answer: answer.Answer, Image: answer.Image})
	}
	return transport.SurveyResponse{
		ID:        survey.ID.String(),
		Question:  survey.Question,
		Answers:   answers,
		Date:      survey.Date,
		DidAnswer: survey.DidAnswer,
	}
}
