package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/shared/response"
)

// =====================================================
// PROJECT HANDLER
// =====================================================

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects returns the project grid data.
// GET /api/v1/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects := h.projectService.ListProjects(c.Request.Context())

	summaries := make([]model.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, model.SummaryOf(p))
	}

	response.SuccessWithMeta(c, http.StatusOK, summaries, &response.Meta{Total: len(summaries)})
}

// GetProject returns one case study with rendered content.
// GET /api/v1/projects/:slug
func (h *ProjectHandler) GetProject(c *gin.Context) {
	slug := c.Param("slug")

	project, err := h.projectService.GetProject(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, model.ErrProjectNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		response.InternalServerError(c, "Failed to load project")
		return
	}

	response.Success(c, http.StatusOK, project)
}
