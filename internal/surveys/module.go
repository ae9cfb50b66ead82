// Package surveys provides the survey listing endpoint of the stub API.
package surveys

import (
	apphttp "survey_client/internal/http"
	"survey_client/internal/surveys/handler"
	"survey_client/internal/surveys/repository"
	"survey_client/internal/surveys/service"
	"survey_client/platform/logger"
)

type Module struct {
	handler *handler.Handler
}

func NewModule(repo repository.SurveyRepository, log *logger.Logger) *Module {
	svc := service.New(repo, log)
	return &Module{handler: handler.New(svc)}
}

func (m *Module) Name() string {
	return "surveys"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected)
}

var _ apphttp.Module = (*Module)(nil)
