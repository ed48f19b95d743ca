package handler

import (
	"net/http"
	"strconv"

	md "github.com/dimasfauzan/perpus-service/pkg/middleware"
	"github.com/dimasfauzan/perpus-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Services struct {
	Auth       AuthService
	Anggota    AnggotaService
	Kategori   KategoriService
	Buku       BukuService
	Petugas    PetugasService
	Peminjaman PeminjamanService
}

type Handler struct {
	svc Services
	log *zap.Logger
}

func New(svc Services, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout, h.authenticate)
	auth.GET("/profile", h.Profile, h.authenticate)
	auth.PUT("/update-profile", h.UpdateProfile, h.authenticate)
	auth.PUT("/change-password", h.ChangePassword, h.authenticate)

	protected := api.Group("", h.authenticate)

	protected.GET("/anggotas", h.ListAnggota)
	protected.POST("/anggotas", h.CreateAnggota)
	protected.GET("/anggotas/:id", h.GetAnggota)
	protected.PUT("/anggotas/:id", h.UpdateAnggota)
	protected.DELETE("/anggotas/:id", h.DeleteAnggota)

	protected.GET("/kategori", h.ListKategori)
	protected.POST("/kategori", h.CreateKategori)
	protected.GET("/kategori/:id", h.GetKategori)
	protected.PUT("/kategori/:id", h.UpdateKategori)
	protected.DELETE("/kategori/:id", h.DeleteKategori)

	protected.GET("/buku/search", h.SearchBuku)
	protected.GET("/buku/kategori-list", h.KategoriList)
	protected.GET("/buku/kategori/:id", h.ListBukuByKategori)
	protected.GET("/buku", h.ListBuku)
	protected.POST("/buku", h.CreateBuku)
	protected.GET("/buku/:id", h.GetBuku)
	protected.PUT("/buku/:id", h.UpdateBuku)
	protected.DELETE("/buku/:id", h.DeleteBuku)

	protected.GET("/petugas", h.ListPetugas)
	protected.POST("/petugas", h.CreatePetugas)
	protected.GET("/petugas/:id", h.GetPetugas)
	protected.PUT("/petugas/:id", h.UpdatePetugas)
	protected.DELETE("/petugas/:id", h.DeletePetugas)

	protected.GET("/peminjaman", h.ListPeminjaman)
	protected.POST("/peminjaman", h.CreatePeminjaman)
	protected.GET("/peminjaman/:id", h.GetPeminjaman)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func idParam(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}
