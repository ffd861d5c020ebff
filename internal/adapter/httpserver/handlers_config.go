package httpserver

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pscheid92/devbox/internal/appcfg"
	"github.com/pscheid92/devbox/internal/domain"
	apperrors "github.com/pscheid92/devbox/internal/platform/errors"
)

const mimeYAML = "application/yaml"

func (s *Server) registerConfigRoutes(limiter echo.MiddlewareFunc) {
	s.echo.GET("/api/app-cfg", s.handleGetConfig)
	s.echo.PUT("/api/app-cfg", s.handleSetConfig, limiter)
}

func appQuery(c echo.Context) (string, error) {
	name := c.QueryParam("app")
	if name == "" {
		return "", apperrors.ValidationError("app query parameter is required")
	}
	return name, nil
}

func (s *Server) handleGetConfig(c echo.Context) error {
	name, err := appQuery(c)
	if err != nil {
		return err
	}

	format := c.QueryParam("format")
	if format != "" && format != "json" && format != "yaml" {
		return apperrors.ValidationError("format must be json or yaml").WithField("format", format)
	}

	doc, err := s.app.GetConfig(c.Request().Context(), name)
	if err != nil {
		return serviceError("failed to load config", err).WithField("app_name", name)
	}

	if format == "yaml" {
		out, err := appcfg.ToYAML(doc)
		if err != nil {
			return apperrors.InternalError("failed to render config as YAML", err).WithField("app_name", name)
		}
		if err := c.Blob(http.StatusOK, mimeYAML, out); err != nil {
			return fmt.Errorf("failed to send YAML response: %w", err)
		}
		return nil
	}

	return respondOK(c, doc)
}

// handleSetConfig stores the body as the app's document. YAML bodies are converted to JSON first.
func (s *Server) handleSetConfig(c echo.Context) error {
	name, err := appQuery(c)
	if err != nil {
		return err
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperrors.ValidationError("failed to read request body")
	}
	if len(body) == 0 {
		return apperrors.ValidationError("config document is required")
	}

	var doc domain.ConfigDocument
	if isYAML(c.Request().Header.Get(echo.HeaderContentType)) {
		doc, err = appcfg.FromYAML(body)
		if err != nil {
			return apperrors.ValidationError("config document is not valid YAML").WithField("app_name", name)
		}
	} else {
		doc = domain.ConfigDocument(body)
		if !doc.Valid() {
			return apperrors.ValidationError("config document is not valid JSON").WithField("app_name", name)
		}
	}

	if err := s.app.SetConfig(c.Request().Context(), name, doc); err != nil {
		return serviceError("failed to save config", err).WithField("app_name", name)
	}

	return respondOK(c, nil)
}

func isYAML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch mediaType {
	case mimeYAML, "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	default:
		return false
	}
}
