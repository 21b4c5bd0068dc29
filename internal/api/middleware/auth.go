package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cyngu/integration-continue-exo-node/internal/api/metrics"
	"github.com/cyngu/integration-continue-exo-node/internal/core/ports"
)

// ClaimsContextKey is where verified token claims are stored on the echo
// context.
const ClaimsContextKey = "claims"

// Auth verifies the bearer token and injects the claims into the context.
// Signature and expiry checks happen here; handlers behind this middleware
// can trust the claims they read.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := BearerToken(c)
			if err != nil {
				return err
			}

			claims, err := tokens.Decode(raw)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}

// BearerToken extracts the raw token from the Authorization header,
// stripping the "Bearer " prefix.
func BearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		metrics.TokenRejectionsTotal.WithLabelValues("malformed_header").Inc()
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
