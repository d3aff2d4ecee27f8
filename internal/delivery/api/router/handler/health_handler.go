package handler

import (
	"net/http"

	"rubbishday/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness. It does not probe the upstream APIs.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
