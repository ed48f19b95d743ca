package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/handler"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/dimasfauzan/perpus-service/internal/handler/mocks"
)

func TestHandler_CreatePeminjaman(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockPeminjamanService)

	ts := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	okReq := model.CreatePeminjamanRequest{
		AnggotaID:         1,
		BukuID:            2,
		PetugasID:         3,
		TanggalPeminjaman: "2024-05-02",
		Status:            "dipinjam",
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockPeminjamanService) {
				r.EXPECT().
					CreatePeminjaman(context.Background(), okReq).
					Return(model.Peminjaman{
						ID:                7,
						AnggotaID:         1,
						BukuID:            2,
						PetugasID:         3,
						TanggalPeminjaman: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
						Status:            model.StatusDipinjam,
						CreatedAt:         ts,
						UpdatedAt:         ts,
					}, nil)
			},
			body:     `{"anggota_id":1,"buku_id":2,"petugas_id":3,"tanggal_peminjaman":"2024-05-02","status":"dipinjam"}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"message":"Peminjaman berhasil ditambahkan!","peminjaman":{"id":7,"anggota_id":1,"buku_id":2,"petugas_id":3,"tanggal_peminjaman":"2024-05-02T00:00:00Z","tanggal_pengembalian":null,"status":"dipinjam","created_at":"2024-05-02T10:00:00Z","updated_at":"2024-05-02T10:00:00Z"}}`,
			},
		},
		{
			name: "err. buku not available",
			mockBehavior: func(r *service_mocks.MockPeminjamanService) {
				r.EXPECT().
					CreatePeminjaman(context.Background(), okReq).
					Return(model.Peminjaman{}, errs.ErrBukuNotAvailable)
			},
			body: `{"anggota_id":1,"buku_id":2,"petugas_id":3,"tanggal_peminjaman":"2024-05-02","status":"dipinjam"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Buku tidak tersedia untuk dipinjam"}`,
			},
			wantErr: true,
		},
		{
			name: "err. unknown anggota",
			mockBehavior: func(r *service_mocks.MockPeminjamanService) {
				r.EXPECT().
					CreatePeminjaman(context.Background(), okReq).
					Return(model.Peminjaman{}, errs.NewValidationError(map[string]string{
						"anggota_id": "tidak ditemukan",
					}))
			},
			body: `{"anggota_id":1,"buku_id":2,"petugas_id":3,"tanggal_peminjaman":"2024-05-02","status":"dipinjam"}`,
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"Validasi gagal!","errors":{"anggota_id":"tidak ditemukan"}}`,
			},
			wantErr: true,
		},
		{
			name:         "err. empty body",
			mockBehavior: func(r *service_mocks.MockPeminjamanService) {},
			body:         `{}`,
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"Validasi gagal!","errors":{"anggota_id":"wajib diisi","buku_id":"wajib diisi","petugas_id":"wajib diisi","status":"wajib diisi","tanggal_peminjaman":"wajib diisi"}}`,
			},
			wantErr: true,
		},
		{
			name:         "err. bad status",
			mockBehavior: func(r *service_mocks.MockPeminjamanService) {},
			body:         `{"anggota_id":1,"buku_id":2,"petugas_id":3,"tanggal_peminjaman":"2024-05-02","status":"hilang"}`,
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"Validasi gagal!","errors":{"status":"harus salah satu dari: dipinjam dikembalikan"}}`,
			},
			wantErr: true,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockPeminjamanService) {
				r.EXPECT().
					CreatePeminjaman(context.Background(), okReq).
					Return(model.Peminjaman{}, errors.New("db internal"))
			},
			body: `{"anggota_id":1,"buku_id":2,"petugas_id":3,"tanggal_peminjaman":"2024-05-02","status":"dipinjam"}`,
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"Terjadi kesalahan!","error":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockPeminjamanService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Peminjaman: svc}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/peminjaman", h.CreatePeminjaman)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/peminjaman", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SearchBuku(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBukuService, judul string)

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		judul        string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockBukuService, judul string) {
				r.EXPECT().
					SearchBuku(context.Background(), judul).
					Return([]model.Buku{
						{
							ID:              4,
							KategoriID:      2,
							NamaBuku:        "Laskar Pelangi",
							Judul:           "Laskar Pelangi",
							Penulis:         "Andrea Hirata",
							Penerbit:        "Bentang Pustaka",
							TahunPenerbitan: time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC),
							JumlahTersedia:  3,
							Kategori: &model.KategoriBuku{
								ID:           2,
								NamaKategori: "Novel",
								Deskripsi:    "Fiksi panjang",
								CreatedAt:    ts,
								UpdatedAt:    ts,
							},
							CreatedAt: ts,
							UpdatedAt: ts,
						},
					}, nil)
			},
			judul: "laskar",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":4,"kategori_id":2,"nama_buku":"Laskar Pelangi","judul":"Laskar Pelangi","penulis":"Andrea Hirata","penerbit":"Bentang Pustaka","tahun_penerbitan":"2005-01-01T00:00:00Z","jumlah_tersedia":3,"kategori":{"id":2,"nama_kategori":"Novel","deskripsi":"Fiksi panjang","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"},"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"}]`,
			},
		},
		{
			name: "err. no match",
			mockBehavior: func(r *service_mocks.MockBukuService, judul string) {
				r.EXPECT().
					SearchBuku(context.Background(), judul).
					Return(nil, errs.ErrNotFound)
			},
			judul: "tidak ada",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Buku tidak ditemukan!"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. judul required",
			mockBehavior: func(r *service_mocks.MockBukuService, judul string) {},
			judul:        "",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"judul is required"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBukuService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Buku: svc}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/buku/search", h.SearchBuku)

			target := "/api/v1/buku/search"
			if tt.judul != "" {
				q := make(url.Values)
				q.Set("judul", tt.judul)
				target += "?" + q.Encode()
			}
			r := httptest.NewRequest(http.MethodGet, target, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.judul)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	okReq := model.LoginRequest{Email: "dimas@perpus.id", Password: "rahasia123"}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(context.Background(), okReq).
					Return(model.Petugas{
						ID:           3,
						NamaPetugas:  "Dimas",
						Posisi:       "Admin",
						NomorTelepon: "0812345678",
						Email:        "dimas@perpus.id",
						CreatedAt:    ts,
						UpdatedAt:    ts,
					}, "d6a7e347-2264-44f0-94b4-9a8f1e0cbb01", nil)
			},
			body: `{"email":"dimas@perpus.id","password":"rahasia123"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Login berhasil!","petugas":{"id":3,"nama_petugas":"Dimas","posisi":"Admin","nomor_telepon":"0812345678","email":"dimas@perpus.id","created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-01T00:00:00Z"},"token":"d6a7e347-2264-44f0-94b4-9a8f1e0cbb01"}`,
			},
		},
		{
			name: "err. wrong password",
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Login(context.Background(), okReq).
					Return(model.Petugas{}, "", errs.ErrInvalidCredentials)
			},
			body: `{"email":"dimas@perpus.id","password":"rahasia123"}`,
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Email atau password salah"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. invalid email",
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			body:         `{"email":"not-an-email","password":"rahasia123"}`,
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"Validasi gagal!","errors":{"email":"format email tidak valid"}}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockAuthService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Auth: svc}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/api/v1/auth/login", h.Login)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

// TestHandler_ChangePassword drives the full router, so the bearer-token
// middleware is part of what is under test.
func TestHandler_ChangePassword(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockAuthService)

	petugas := model.Petugas{ID: 3, NamaPetugas: "Dimas", Email: "dimas@perpus.id"}
	okReq := model.ChangePasswordRequest{
		CurrentPassword:         "rahasia123",
		NewPassword:             "rahasia456",
		NewPasswordConfirmation: "rahasia456",
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		authHeader   string
		body         string
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Authenticate(gomock.Any(), "tok-123").
					Return(petugas, "hash-123", nil)
				r.EXPECT().
					ChangePassword(gomock.Any(), petugas.ID, okReq).
					Return(nil)
			},
			authHeader: "Bearer tok-123",
			body:       `{"current_password":"rahasia123","new_password":"rahasia456","new_password_confirmation":"rahasia456"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"message":"Password berhasil diubah, silakan login kembali."}`,
			},
		},
		{
			name:         "err. no token",
			mockBehavior: func(r *service_mocks.MockAuthService) {},
			authHeader:   "",
			body:         `{"current_password":"rahasia123","new_password":"rahasia456","new_password_confirmation":"rahasia456"}`,
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Unauthenticated."}`,
			},
			wantErr: true,
		},
		{
			name: "err. revoked token",
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Authenticate(gomock.Any(), "tok-revoked").
					Return(model.Petugas{}, "", errs.ErrInvalidToken)
			},
			authHeader: "Bearer tok-revoked",
			body:       `{"current_password":"rahasia123","new_password":"rahasia456","new_password_confirmation":"rahasia456"}`,
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Unauthenticated."}`,
			},
			wantErr: true,
		},
		{
			name: "err. wrong current password",
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Authenticate(gomock.Any(), "tok-123").
					Return(petugas, "hash-123", nil)
				r.EXPECT().
					ChangePassword(gomock.Any(), petugas.ID, okReq).
					Return(errs.ErrInvalidCredentials)
			},
			authHeader: "Bearer tok-123",
			body:       `{"current_password":"rahasia123","new_password":"rahasia456","new_password_confirmation":"rahasia456"}`,
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"Email atau password salah"}`,
			},
			wantErr: true,
		},
		{
			name: "err. confirmation mismatch",
			mockBehavior: func(r *service_mocks.MockAuthService) {
				r.EXPECT().
					Authenticate(gomock.Any(), "tok-123").
					Return(petugas, "hash-123", nil)
			},
			authHeader: "Bearer tok-123",
			body:       `{"current_password":"rahasia123","new_password":"rahasia456","new_password_confirmation":"lain"}`,
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"Validasi gagal!","errors":{"new_password_confirmation":"konfirmasi tidak cocok"}}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockAuthService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Auth: svc}, log)

			e := h.NewRouter()

			r := httptest.NewRequest(http.MethodPut, "/api/v1/auth/change-password", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetBuku(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBukuService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		id           string
		response     response
		wantErr      bool
	}{
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockBukuService) {
				r.EXPECT().
					GetBuku(context.Background(), 99).
					Return(model.Buku{}, errs.ErrNotFound)
			},
			id: "99",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Buku tidak ditemukan!"}`,
			},
			wantErr: true,
		},
		{
			name:         "err. bad id",
			mockBehavior: func(r *service_mocks.MockBukuService) {},
			id:           "abc",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBukuService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(handler.Services{Buku: svc}, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/api/v1/buku/:id", h.GetBuku)

			r := httptest.NewRequest(http.MethodGet, "/api/v1/buku/"+tt.id, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
