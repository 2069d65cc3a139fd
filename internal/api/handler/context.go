package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/amaris/catalog-api/internal/api/middleware"
	"github.com/amaris/catalog-api/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and
// fast-fails when a handler is reached without them (a wiring error, not a
// client error, but still rejected with 401).
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
