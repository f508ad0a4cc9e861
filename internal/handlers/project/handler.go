package project

import (
	"net/http"
	"portfolio/infras/otel"
	"portfolio/internal/domains/project/model/dto"
	"portfolio/internal/domains/project/service"
	"portfolio/shared/constant"
	"portfolio/shared/validator"
	"portfolio/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Project
	otel    otel.Otel
}

func New(service service.Project, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/projects", handler.GetProjects)
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Post("/projects", handler.CreateProject)
}

// CreateProject adds a portfolio project.
// @Summary Create a project
// @Description Add a portfolio project entry.
// @Tags Project
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Create Project Request"
// @Success 201 {object} response.Data[dto.ProjectResponse] "Project created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/projects [post]
// @Security BearerAuth
func (handler *Handler) CreateProject(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProject")
	defer scope.End()

	req := dto.CreateProjectRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		log.Debug().Err(err).Msg("invalid project request")

		response.WithError(writer, err)

		return
	}

	project, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create project")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, project)
}

// GetProjects lists portfolio projects.
// @Summary List projects
// @Description List every portfolio project, newest first.
// @Tags Project
// @Produce json
// @Success 200 {object} response.Data[dto.GetProjectsResponse] "List of projects"
// @Failure 500 {object} response.Error
// @Router /v1/projects [get]
func (handler *Handler) GetProjects(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjects")
	defer scope.End()

	projects, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get projects")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, projects)
}
