package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const maxBodySize = "1M"

// envelope is the success body shape: {"code":200,"data":...}.
type envelope struct {
	Code int `json:"code"`
	Data any `json:"data,omitempty"`
}

func respondOK(c echo.Context, data any) error {
	if err := c.JSON(http.StatusOK, envelope{Code: http.StatusOK, Data: data}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
