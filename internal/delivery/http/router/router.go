// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProjectHandler *handler.ProjectHandler
	SectionHandler *handler.SectionHandler
	OutlineHandler *handler.OutlineHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	projectHandler *handler.ProjectHandler
	sectionHandler *handler.SectionHandler
	outlineHandler *handler.OutlineHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		projectHandler: params.ProjectHandler,
		sectionHandler: params.SectionHandler,
		outlineHandler: params.OutlineHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Outline suggestions are advisory and need no account context.
	e.POST("/outline", r.outlineHandler.SuggestOutline)

	// Project routes that require authentication
	projectsGroup := e.Group("/projects")
	projectsGroup.Use(r.authMiddleware.Authenticate)
	{
		projectsGroup.POST("", r.projectHandler.CreateProject)
		projectsGroup.GET("", r.projectHandler.ListProjects)
		projectsGroup.GET("/:id", r.projectHandler.GetProject)
		projectsGroup.DELETE("/:id", r.projectHandler.DeleteProject)
		projectsGroup.GET("/:id/export", r.projectHandler.ExportProject)
		projectsGroup.POST("/:id/sections", r.sectionHandler.GenerateSection)
	}

	// Section routes that require authentication
	sectionsGroup := e.Group("/sections")
	sectionsGroup.Use(r.authMiddleware.Authenticate)
	{
		sectionsGroup.PUT("/:id/refine", r.sectionHandler.RefineSection)
	}
}
