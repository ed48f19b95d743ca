package handler

import (
	"context"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.Petugas, string, error)
	Login(ctx context.Context, req model.LoginRequest) (model.Petugas, string, error)
	Authenticate(ctx context.Context, token string) (model.Petugas, string, error)
	Logout(ctx context.Context, tokenHash string) error
	UpdateProfile(ctx context.Context, petugasID int, req model.UpdateProfileRequest) (model.Petugas, error)
	ChangePassword(ctx context.Context, petugasID int, req model.ChangePasswordRequest) error
}

type AnggotaService interface {
	ListAnggota(ctx context.Context) ([]model.Anggota, error)
	CreateAnggota(ctx context.Context, req model.CreateAnggotaRequest) (model.Anggota, error)
	GetAnggota(ctx context.Context, id int) (model.Anggota, error)
	UpdateAnggota(ctx context.Context, id int, req model.UpdateAnggotaRequest) (model.Anggota, error)
	DeleteAnggota(ctx context.Context, id int) error
}

type KategoriService interface {
	ListKategori(ctx context.Context) ([]model.KategoriBuku, error)
	CreateKategori(ctx context.Context, req model.CreateKategoriRequest) (model.KategoriBuku, error)
	GetKategori(ctx context.Context, id int) (model.KategoriBuku, error)
	UpdateKategori(ctx context.Context, id int, req model.UpdateKategoriRequest) (model.KategoriBuku, error)
	DeleteKategori(ctx context.Context, id int) error
}

type BukuService interface {
	ListBuku(ctx context.Context) ([]model.Buku, error)
	CreateBuku(ctx context.Context, req model.CreateBukuRequest) (model.Buku, error)
	GetBuku(ctx context.Context, id int) (model.Buku, error)
	UpdateBuku(ctx context.Context, id int, req model.UpdateBukuRequest) (model.Buku, error)
	DeleteBuku(ctx context.Context, id int) error
	SearchBuku(ctx context.Context, judul string) ([]model.Buku, error)
	ListBukuByKategori(ctx context.Context, kategoriID int) ([]model.Buku, error)
}

type PetugasService interface {
	ListPetugas(ctx context.Context) ([]model.Petugas, error)
	CreatePetugas(ctx context.Context, req model.CreatePetugasRequest) (model.Petugas, error)
	GetPetugas(ctx context.Context, id int) (model.Petugas, error)
	UpdatePetugas(ctx context.Context, id int, req model.UpdatePetugasRequest) (model.Petugas, error)
	DeletePetugas(ctx context.Context, id int) error
}

type PeminjamanService interface {
	ListPeminjaman(ctx context.Context) ([]model.Peminjaman, error)
	CreatePeminjaman(ctx context.Context, req model.CreatePeminjamanRequest) (model.Peminjaman, error)
	GetPeminjaman(ctx context.Context, id int) (model.Peminjaman, error)
}

var (
	_ AuthService       = (*service.Auth)(nil)
	_ AnggotaService    = (*service.Anggota)(nil)
	_ KategoriService   = (*service.Kategori)(nil)
	_ BukuService       = (*service.Buku)(nil)
	_ PetugasService    = (*service.Petugas)(nil)
	_ PeminjamanService = (*service.Peminjaman)(nil)
)
