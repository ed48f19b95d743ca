package handler

import (
	"net/http"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type validationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// respondError translates the error taxonomy into the HTTP surface.
// Every failure passes through here, nothing leaks untranslated.
func (h *Handler) respondError(c echo.Context, err error, notFoundMsg string) error {
	var vErr *errs.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.JSON(http.StatusUnprocessableEntity, validationResponse{
			Message: "Validasi gagal!",
			Errors:  vErr.Fields,
		})
	case errors.Is(err, errs.ErrNotFound):
		return c.JSON(http.StatusNotFound, messageResponse{Message: notFoundMsg})
	case errors.Is(err, errs.ErrBukuNotAvailable):
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Buku tidak tersedia untuk dipinjam"})
	case errors.Is(err, errs.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Email atau password salah"})
	case errors.Is(err, errs.ErrInvalidToken):
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Unauthenticated."})
	default:
		h.log.Error("request failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{
			Message: "Terjadi kesalahan!",
			Error:   err.Error(),
		})
	}
}
