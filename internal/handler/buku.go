package handler

import (
	"net/http"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/labstack/echo/v4"
)

type bukuResponse struct {
	Message string     `json:"message"`
	Buku    model.Buku `json:"buku"`
}

func (h *Handler) ListBuku(c echo.Context) error {
	items, err := h.svc.Buku.ListBuku(c.Request().Context())
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateBuku(c echo.Context) error {
	var req model.CreateBukuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	b, err := h.svc.Buku.CreateBuku(c.Request().Context(), req)
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusCreated, bukuResponse{Message: "Buku berhasil ditambahkan!", Buku: b})
}

func (h *Handler) GetBuku(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	b, err := h.svc.Buku.GetBuku(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err, "Buku tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) UpdateBuku(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	var req model.UpdateBukuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return h.respondError(c, err, "")
	}

	b, err := h.svc.Buku.UpdateBuku(c.Request().Context(), id, req)
	if err != nil {
		return h.respondError(c, err, "Buku tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, bukuResponse{Message: "Buku berhasil diperbarui!", Buku: b})
}

func (h *Handler) DeleteBuku(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	if err := h.svc.Buku.DeleteBuku(c.Request().Context(), id); err != nil {
		return h.respondError(c, err, "Buku tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Buku berhasil dihapus!"})
}

// SearchBuku treats an empty result as not found, matching the documented
// behavior of the catalog search.
func (h *Handler) SearchBuku(c echo.Context) error {
	judul := c.QueryParam("judul")
	if judul == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "judul is required")
	}

	items, err := h.svc.Buku.SearchBuku(c.Request().Context(), judul)
	if err != nil {
		return h.respondError(c, err, "Buku tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) KategoriList(c echo.Context) error {
	items, err := h.svc.Kategori.ListKategori(c.Request().Context())
	if err != nil {
		return h.respondError(c, err, "")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListBukuByKategori(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}

	items, err := h.svc.Buku.ListBukuByKategori(c.Request().Context(), id)
	if err != nil {
		return h.respondError(c, err, "Kategori tidak ditemukan!")
	}
	return c.JSON(http.StatusOK, items)
}
