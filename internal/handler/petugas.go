package handler

import (
	"net/http"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/labstack/echo/v4"
)

type petugasResponse struct {
	Message string        `json:"message"`
	Petugas model.Petugas `json:"petugas"`
}

func (h *Handler) ListPetugas(c echo.Context) error {
	items, err := h.svc.Petugas.ListPetugas(c.Request().Context())
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreatePetugas(c echo.Context) error {
	var req model.CreatePetugasRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	p, err := h.svc.Petugas.CreatePetugas(c.Request().Context(), req)
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, petugasResponse{Message: "Petugas berhasil ditambahkan!", Petugas: p})
}

func (h *Handler) GetPetugas(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	p, err := h.svc.Petugas.GetPetugas(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err, "Petugas tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePetugas(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	var req model.UpdatePetugasRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	p, err := h.svc.Petugas.UpdatePetugas(c.Request().Context(), id, req)
	if err != nil {
		return h.respondError(c, err, "Petugas tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, petugasResponse{Message: "Petugas berhasil diperbarui!", Petugas: p})
}

func (h *Handler) DeletePetugas(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	if err := h.svc.Petugas.DeletePetugas(c.Request().Context(), id); err != nil {
		return h.respondError(c, err, "Petugas tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Petugas berhasil dihapus!"})
}
