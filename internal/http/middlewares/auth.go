package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"relief-coordination.com/relief-coordination/internal/auth"
	apperrors "relief-coordination.com/relief-coordination/internal/errors"
)

type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate requires a valid bearer token and stores the caller's identity
// on the request context.
func Authenticate(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return apperrors.ErrUnauthorized
			}

			identity, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				return apperrors.ErrUnauthorized
			}

			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithIdentity(req.Context(), identity)))
			return next(c)
		}
	}
}

func RequireAuthority() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := auth.FromContext(c.Request().Context())
			if !ok {
				return apperrors.ErrUnauthorized
			}
			if !identity.IsAuthority() {
				return apperrors.ErrAuthorityRequired
			}
			return next(c)
		}
	}
}
