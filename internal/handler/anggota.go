package handler

import (
	"net/http"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/labstack/echo/v4"
)

type anggotaResponse struct {
	Message string        `json:"message"`
	Anggota model.Anggota `json:"anggota"`
}

func (h *Handler) ListAnggota(c echo.Context) error {
	items, err := h.svc.Anggota.ListAnggota(c.Request().Context())
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateAnggota(c echo.Context) error {
	var req model.CreateAnggotaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	a, err := h.svc.Anggota.CreateAnggota(c.Request().Context(), req)
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, anggotaResponse{Message: "Anggota berhasil ditambahkan!", Anggota: a})
}

func (h *Handler) GetAnggota(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	a, err := h.svc.Anggota.GetAnggota(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err, "Anggota tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateAnggota(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	var req model.UpdateAnggotaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	a, err := h.svc.Anggota.UpdateAnggota(c.Request().Context(), id, req)
	if err != nil {
		return h.respondError(c, err, "Anggota tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, anggotaResponse{Message: "Anggota berhasil diperbarui!", Anggota: a})
}

func (h *Handler) DeleteAnggota(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	if err := h.svc.Anggota.DeleteAnggota(c.Request().Context(), id); err != nil {
		return h.respondError(c, err, "Anggota tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Anggota berhasil dihapus!"})
}
