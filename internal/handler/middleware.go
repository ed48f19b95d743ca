package handler

import (
	"net/http"
	"strings"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	authorizationHeader = "Authorization"
	bearer              = "Bearer "

	petugasContextKey   = "petugas"
	tokenHashContextKey = "tokenHash"
)

// authenticate resolves the bearer token to a petugas and stores both the
// identity and the presenting token's hash on the request context.
func (h *Handler) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authorization := c.Request().Header.Get(authorizationHeader)
		if authorization == "" {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthenticated."})
		}
		if !strings.HasPrefix(authorization, bearer) {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthenticated."})
		}
		token := strings.TrimPrefix(authorization, bearer)

		p, tokenHash, err := h.svc.Auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, errs.ErrInvalidToken) {
				return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthenticated."})
			}
			return h.respondError(c, err, "")
		}

		c.Set(petugasContextKey, p)
		c.Set(tokenHashContextKey, tokenHash)
		return next(c)
	}
}

func currentPetugas(c echo.Context) model.Petugas {
	p, _ := c.Get(petugasContextKey).(model.Petugas)
	return p
}

func currentTokenHash(c echo.Context) string {
	hash, _ := c.Get(tokenHashContextKey).(string)
	return hash
}
