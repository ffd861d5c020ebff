package httpserver

import (
	"bytes"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/devbox/internal/domain"
	apperrors "github.com/pscheid92/devbox/internal/platform/errors"
)

func (s *Server) registerContainerRoutes(limiter echo.MiddlewareFunc) {
	s.echo.GET("/api/list-app-containers", s.handleListAppContainers)
	s.echo.GET("/api/list-my-containers", s.handleListMyContainers)
	s.echo.POST("/api/bind-container", s.handleBindContainer, limiter)
	s.echo.POST("/api/unbind-container", s.handleUnbindContainer, limiter)
}

// optionalID accepts a JSON number or a numeric string. null and "" mean absent.
type optionalID struct {
	value int64
	set   bool
}

func (o *optionalID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*o = optionalID{}
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*o = optionalID{value: v, set: true}
	return nil
}

func (o optionalID) ptr() *int64 {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

type bindContainerRequest struct {
	ContainerID   optionalID `json:"containerId"`
	AppID         optionalID `json:"appId"`
	PodSelector   string     `json:"podSelector"`
	ContainerName string     `json:"containerName"`
	DevEnv        string     `json:"devEnv"`
}

type unbindContainerRequest struct {
	ContainerID   optionalID `json:"containerId"`
	AppID         optionalID `json:"appId"`
	PodSelector   string     `json:"podSelector"`
	ContainerName string     `json:"containerName"`
}

func (s *Server) handleListAppContainers(c echo.Context) error {
	name, err := appQuery(c)
	if err != nil {
		return err
	}

	containers, err := s.app.ListAppContainers(c.Request().Context(), name)
	if err != nil {
		return serviceError("failed to list containers", err).WithField("app_name", name)
	}
	return respondOK(c, containers)
}

func (s *Server) handleListMyContainers(c echo.Context) error {
	unboundOnly := false
	if raw := c.QueryParam("unbind"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return apperrors.ValidationError("unbind must be a boolean").WithField("unbind", raw)
		}
		unboundOnly = v
	}

	bindings, err := s.app.ListBindings(c.Request().Context(), unboundOnly)
	if err != nil {
		return serviceError("failed to list bindings", err)
	}
	return respondOK(c, bindings)
}

func (s *Server) handleBindContainer(c echo.Context) error {
	var req bindContainerRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if !req.AppID.set {
		return apperrors.ValidationError("appId is required")
	}

	_, err := s.app.BindContainer(c.Request().Context(), domain.BindRequest{
		ContainerID:   req.ContainerID.ptr(),
		AppID:         req.AppID.value,
		PodSelector:   req.PodSelector,
		ContainerName: req.ContainerName,
		DevEnv:        req.DevEnv,
	})
	if err != nil {
		return serviceError("failed to bind container", err).
			WithField("app_id", req.AppID.value).
			WithField("container_name", req.ContainerName)
	}

	return respondOK(c, nil)
}

func (s *Server) handleUnbindContainer(c echo.Context) error {
	var req unbindContainerRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if !req.ContainerID.set {
		return apperrors.ValidationError("containerId is required")
	}

	_, err := s.app.UnbindContainer(c.Request().Context(), domain.UnbindRequest{
		ContainerID:   req.ContainerID.value,
		AppID:         req.AppID.value,
		PodSelector:   req.PodSelector,
		ContainerName: req.ContainerName,
	})
	if err != nil {
		return serviceError("failed to unbind container", err).WithField("container_id", req.ContainerID.value)
	}

	return respondOK(c, nil)
}
