package handler

import (
	"net/http"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/labstack/echo/v4"
)

type kategoriResponse struct {
	Message  string             `json:"message"`
	Kategori model.KategoriBuku `json:"kategori"`
}

func (h *Handler) ListKategori(c echo.Context) error {
	items, err := h.svc.Kategori.ListKategori(c.Request().Context())
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateKategori(c echo.Context) error {
	var req model.CreateKategoriRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	k, err := h.svc.Kategori.CreateKategori(c.Request().Context(), req)
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, kategoriResponse{Message: "Kategori berhasil ditambahkan!", Kategori: k})
}

func (h *Handler) GetKategori(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	k, err := h.svc.Kategori.GetKategori(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err, "Kategori tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, k)
}

func (h *Handler) UpdateKategori(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	var req model.UpdateKategoriRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	k, err := h.svc.Kategori.UpdateKategori(c.Request().Context(), id, req)
	if err != nil {
		return h.respondError(c, err, "Kategori tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, kategoriResponse{Message: "Kategori berhasil diperbarui!", Kategori: k})
}

func (h *Handler) DeleteKategori(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	if err := h.svc.Kategori.DeleteKategori(c.Request().Context(), id); err != nil {
		return h.respondError(c, err, "Kategori tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Kategori berhasil dihapus!"})
}
