package handler

import (
	"log/slog"
	"net/http"

	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OutlineHandlerParams holds dependencies for OutlineHandler, injected by Fx.
type OutlineHandlerParams struct {
	fx.In

	OutlineUC usecase.OutlineUsecase
	Logger    *slog.Logger
}

// OutlineHandler holds dependencies for outline suggestion handlers.
type OutlineHandler struct {
	outlineUC usecase.OutlineUsecase
	logger    *slog.Logger
}

// NewOutlineHandler is the constructor for OutlineHandler.
func NewOutlineHandler(params OutlineHandlerParams) *OutlineHandler {
	return &OutlineHandler{
		outlineUC: params.OutlineUC,
		logger:    params.Logger,
	}
}

// SuggestOutline returns suggested section headers or slide titles for a topic.
func (h *OutlineHandler) SuggestOutline(c echo.Context) error {
	var input usecase.OutlineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outline input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	titles, err := h.outlineUC.SuggestOutline(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string][]string{"outline": titles})
}
