package handler

import (
	"net/http"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/labstack/echo/v4"
)

func (h *Handler) ListPeminjaman(c echo.Context) error {
	items, err := h.svc.Peminjaman.ListPeminjaman(c.Request().Context())
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreatePeminjaman(c echo.Context) error {
	var req model.CreatePeminjamanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	p, err := h.svc.Peminjaman.CreatePeminjaman(c.Request().Context(), req)
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, struct {
		Message    string           `json:"message"`
		Peminjaman model.Peminjaman `json:"peminjaman"`
	}{"Peminjaman berhasil ditambahkan!", p})
}

func (h *Handler) GetPeminjaman(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	p, err := h.svc.Peminjaman.GetPeminjaman(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err, "Peminjaman tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, p)
}
