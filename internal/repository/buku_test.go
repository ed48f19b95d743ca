package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepo(t *testing.T) (*repository.Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	repo, err := repository.NewRepository(sqlx.NewDb(mockDB, "sqlmock"), zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

var bukuRowColumns = []string{
	"id", "kategori_id", "nama_buku", "judul", "penulis", "penerbit",
	"tahun_penerbitan", "jumlah_tersedia", "created_at", "updated_at",
}

// The insert returns the written row itself; the only follow-up query is
// the kategori fetch, the bukus table is never read back.
func TestRepository_CreateBuku(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tahun := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO bukus").
		WithArgs(2, "Laskar Pelangi", "Laskar Pelangi", "Andrea Hirata", "Bentang Pustaka", "2005-01-01", 3).
		WillReturnRows(sqlmock.NewRows(bukuRowColumns).
			AddRow(4, 2, "Laskar Pelangi", "Laskar Pelangi", "Andrea Hirata", "Bentang Pustaka", tahun, 3, ts, ts))
	mock.ExpectQuery("SELECT .+ FROM kategori_bukus").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nama_kategori", "deskripsi", "created_at", "updated_at"}).
			AddRow(2, "Novel", "Fiksi panjang", ts, ts))

	b, err := repo.CreateBuku(context.Background(), model.CreateBukuRequest{
		KategoriID:      2,
		NamaBuku:        "Laskar Pelangi",
		Judul:           "Laskar Pelangi",
		Penulis:         "Andrea Hirata",
		Penerbit:        "Bentang Pustaka",
		TahunPenerbitan: "2005-01-01",
		JumlahTersedia:  3,
	})
	require.NoError(t, err)
	require.Equal(t, 4, b.ID)
	require.Equal(t, 3, b.JumlahTersedia)
	require.NotNil(t, b.Kategori)
	require.Equal(t, "Novel", b.Kategori.NamaKategori)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateBuku(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tahun := time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)
	judul := "Edisi Baru"

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("UPDATE bukus").
			WithArgs(judul, 4).
			WillReturnRows(sqlmock.NewRows(bukuRowColumns).
				AddRow(4, 2, "Laskar Pelangi", judul, "Andrea Hirata", "Bentang Pustaka", tahun, 3, ts, ts))
		mock.ExpectQuery("SELECT .+ FROM kategori_bukus").
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "nama_kategori", "deskripsi", "created_at", "updated_at"}).
				AddRow(2, "Novel", "Fiksi panjang", ts, ts))

		b, err := repo.UpdateBuku(context.Background(), 4, model.UpdateBukuRequest{Judul: &judul})
		require.NoError(t, err)
		require.Equal(t, judul, b.Judul)
		require.NotNil(t, b.Kategori)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("err. row gone", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("UPDATE bukus").
			WithArgs(judul, 99).
			WillReturnRows(sqlmock.NewRows(bukuRowColumns))

		_, err := repo.UpdateBuku(context.Background(), 99, model.UpdateBukuRequest{Judul: &judul})
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
