package repository

import (
	"context"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type AnggotaRepository interface {
	ListAnggota(ctx context.Context) ([]model.Anggota, error)
	CreateAnggota(ctx context.Context, req model.CreateAnggotaRequest) (model.Anggota, error)
	GetAnggota(ctx context.Context, id int) (model.Anggota, error)
	UpdateAnggota(ctx context.Context, id int, req model.UpdateAnggotaRequest) (model.Anggota, error)
	DeleteAnggota(ctx context.Context, id int) error
}

type KategoriRepository interface {
	ListKategori(ctx context.Context) ([]model.KategoriBuku, error)
	CreateKategori(ctx context.Context, req model.CreateKategoriRequest) (model.KategoriBuku, error)
	GetKategori(ctx context.Context, id int) (model.KategoriBuku, error)
	UpdateKategori(ctx context.Context, id int, req model.UpdateKategoriRequest) (model.KategoriBuku, error)
	DeleteKategori(ctx context.Context, id int) error
}

type BukuRepository interface {
	ListBuku(ctx context.Context) ([]model.Buku, error)
	CreateBuku(ctx context.Context, req model.CreateBukuRequest) (model.Buku, error)
	GetBuku(ctx context.Context, id int) (model.Buku, error)
	UpdateBuku(ctx context.Context, id int, req model.UpdateBukuRequest) (model.Buku, error)
	DeleteBuku(ctx context.Context, id int) error
	SearchBuku(ctx context.Context, judul string) ([]model.Buku, error)
	ListBukuByKategori(ctx context.Context, kategoriID int) ([]model.Buku, error)
}

type PetugasRepository interface {
	ListPetugas(ctx context.Context) ([]model.Petugas, error)
	CreatePetugas(ctx context.Context, req model.CreatePetugasRequest, passwordHash string) (model.Petugas, error)
	CreatePetugasWithToken(ctx context.Context, req model.CreatePetugasRequest, passwordHash, tokenHash string) (model.Petugas, error)
	GetPetugas(ctx context.Context, id int) (model.Petugas, error)
	GetPetugasByEmail(ctx context.Context, email string) (model.Petugas, error)
	UpdatePetugas(ctx context.Context, id int, req model.UpdatePetugasRequest) (model.Petugas, error)
	UpdatePetugasPassword(ctx context.Context, id int, passwordHash string) error
	DeletePetugas(ctx context.Context, id int) error
}

type TokenRepository interface {
	RotateToken(ctx context.Context, petugasID int, tokenHash string) error
	GetPetugasByToken(ctx context.Context, tokenHash string) (model.Petugas, error)
	RevokeToken(ctx context.Context, tokenHash string) error
	RevokeAllTokens(ctx context.Context, petugasID int) error
}

type PeminjamanRepository interface {
	ListPeminjaman(ctx context.Context) ([]model.Peminjaman, error)
	GetPeminjaman(ctx context.Context, id int) (model.Peminjaman, error)
	CreatePeminjaman(ctx context.Context, req model.CreatePeminjamanRequest) (model.Peminjaman, error)
}

type Repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*Repository, error) {
	return &Repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	anggotaTableName      = `anggotas`
	kategoriTableName     = `kategori_bukus`
	bukuTableName         = `bukus`
	petugasTableName      = `petugas`
	peminjamanTableName   = `peminjamen`
	petugasTokenTableName = `petugas_tokens`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
