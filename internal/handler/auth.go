package handler

import (
	"net/http"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/labstack/echo/v4"
)

type authResponse struct {
	Message string        `json:"message"`
	Petugas model.Petugas `json:"petugas"`
	Token   string        `json:"token"`
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	p, token, err := h.svc.Auth.Register(c.Request().Context(), req)
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, authResponse{
		Message: "Registrasi berhasil!",
		Petugas: p,
		Token:   token,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	p, token, err := h.svc.Auth.Login(c.Request().Context(), req)
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, authResponse{
		Message: "Login berhasil!",
		Petugas: p,
		Token:   token,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.svc.Auth.Logout(c.Request().Context(), currentTokenHash(c)); err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Logout berhasil!"})
}

func (h *Handler) Profile(c echo.Context) error {
	return c.JSON(http.StatusOK, currentPetugas(c))
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var req model.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	p, err := h.svc.Auth.UpdateProfile(c.Request().Context(), currentPetugas(c).ID, req)
	if err != nil {
		return h.respondError(c, err, "Petugas tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, struct {
		Message string        `json:"message"`
		Petugas model.Petugas `json:"petugas"`
	}{"Profil berhasil diperbarui!", p})
}

func (h *Handler) ChangePassword(c echo.Context) error {
	var req model.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	if err := h.svc.Auth.ChangePassword(c.Request().Context(), currentPetugas(c).ID, req); err != nil {
		return h.respondError(c, err, "Petugas tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Password berhasil diubah, silakan login kembali."})
}
