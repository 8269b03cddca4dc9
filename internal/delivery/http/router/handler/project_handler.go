package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler holds dependencies for project-related handlers.
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler.
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC: params.ProjectUC,
		logger:    params.Logger,
	}
}

// CreateProject handles project creation for the authenticated user.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	var input usecase.CreateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	project, err := h.projectUC.CreateProject(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, project)
}

// ListProjects returns every project owned by the authenticated user.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	projects, err := h.projectUC.ListProjects(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, projects)
}

// GetProject returns a single project with its sections.
func (h *ProjectHandler) GetProject(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID format")
	}

	project, err := h.projectUC.GetProject(c.Request().Context(), userID, projectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, project)
}

// DeleteProject deletes a project together with all of its sections.
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID format")
	}

	if err := h.projectUC.DeleteProject(c.Request().Context(), userID, projectID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Project deleted"})
}

// ExportProject renders the project into its downloadable document form and
// streams it back as a file attachment.
func (h *ProjectHandler) ExportProject(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID format")
	}

	output, err := h.projectUC.ExportProject(c.Request().Context(), userID, projectID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, output.Filename))

	return c.Blob(http.StatusOK, output.ContentType, output.Content)
}
