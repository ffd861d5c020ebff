package httpserver

import (
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/pscheid92/devbox/internal/platform/errors"
)

func (s *Server) registerApplicationRoutes(limiter echo.MiddlewareFunc) {
	s.echo.POST("/api/command/create-app", s.handleCreateApp, limiter)
	s.echo.POST("/api/command/delete-app", s.handleDeleteApp, limiter)
	s.echo.GET("/api/command/list-app", s.handleListApps)
}

type createAppRequest struct {
	Name   string `json:"name"`
	DevEnv string `json:"devEnv"`
}

type deleteAppRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateApp(c echo.Context) error {
	var req createAppRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.ValidationError("name is required")
	}

	app, err := s.app.CreateApplication(c.Request().Context(), req.Name, req.DevEnv)
	if err != nil {
		return serviceError("failed to create application", err).WithField("app_name", req.Name)
	}

	return respondOK(c, map[string]int64{"appId": app.ID})
}

func (s *Server) handleDeleteApp(c echo.Context) error {
	var req deleteAppRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.ValidationError("name is required")
	}

	if err := s.app.DeleteApplication(c.Request().Context(), req.Name); err != nil {
		return serviceError("failed to delete application", err).WithField("app_name", req.Name)
	}

	return respondOK(c, nil)
}

func (s *Server) handleListApps(c echo.Context) error {
	apps, err := s.app.ListApplications(c.Request().Context())
	if err != nil {
		return serviceError("failed to list applications", err)
	}
	return respondOK(c, apps)
}
