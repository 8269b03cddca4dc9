package handler

import (
	"log/slog"
	"net/http"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SectionHandlerParams holds dependencies for SectionHandler, injected by Fx.
type SectionHandlerParams struct {
	fx.In

	SectionUC usecase.SectionUsecase
	Logger    *slog.Logger
}

// SectionHandler holds dependencies for section-related handlers.
type SectionHandler struct {
	sectionUC usecase.SectionUsecase
	logger    *slog.Logger
}

// NewSectionHandler is the constructor for SectionHandler.
func NewSectionHandler(params SectionHandlerParams) *SectionHandler {
	return &SectionHandler{
		sectionUC: params.SectionUC,
		logger:    params.Logger,
	}
}

// RefineSectionRequest represents the request body for refining a section.
type RefineSectionRequest struct {
	Instruction string `json:"instruction" validate:"required"`
}

// GenerateSection generates content for a new section under a project.
func (h *SectionHandler) GenerateSection(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid project ID format")
	}

	var input usecase.GenerateSectionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid section input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	section, err := h.sectionUC.GenerateSection(c.Request().Context(), userID, projectID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, section)
}

// RefineSection rewrites a section's content under a natural-language
// instruction and records the transition in its refinement history.
func (h *SectionHandler) RefineSection(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user ID in token")
	}

	sectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid section ID format")
	}

	var req RefineSectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refinement input")
	}

	// Echo does not bind query params on PUT; keep the query fallback for
	// clients that pass the instruction outside the body.
	if req.Instruction == "" {
		req.Instruction = c.QueryParam("instruction")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	section, err := h.sectionUC.RefineSection(c.Request().Context(), userID, sectionID, req.Instruction)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, section)
}
