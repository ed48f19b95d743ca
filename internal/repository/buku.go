package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

// bukuRow flattens a bukus x kategori_bukus join; the kategori side is
// assembled back into the nested object by toBuku.
type bukuRow struct {
	model.Buku
	KatID        int       `db:"k_id"`
	KatNama      string    `db:"k_nama_kategori"`
	KatDeskripsi string    `db:"k_deskripsi"`
	KatCreatedAt time.Time `db:"k_created_at"`
	KatUpdatedAt time.Time `db:"k_updated_at"`
}

func (row bukuRow) toBuku() model.Buku {
	b := row.Buku
	b.Kategori = &model.KategoriBuku{
		ID:           row.KatID,
		NamaKategori: row.KatNama,
		Deskripsi:    row.KatDeskripsi,
		CreatedAt:    row.KatCreatedAt,
		UpdatedAt:    row.KatUpdatedAt,
	}
	return b
}

func toBukus(rows []bukuRow) []model.Buku {
	items := make([]model.Buku, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toBuku())
	}
	return items
}

var bukuJoinColumns = []string{
	"b.id", "b.kategori_id", "b.nama_buku", "b.judul", "b.penulis", "b.penerbit",
	"b.tahun_penerbitan", "b.jumlah_tersedia", "b.created_at", "b.updated_at",
	"k.id as k_id", "k.nama_kategori as k_nama_kategori", "k.deskripsi as k_deskripsi",
	"k.created_at as k_created_at", "k.updated_at as k_updated_at",
}

func (r *Repository) selectBuku() sq.SelectBuilder {
	return qb.Select(bukuJoinColumns...).
		From(bukuTableName + " b").
		Join(fmt.Sprintf("%s k on k.id = b.kategori_id", kategoriTableName))
}

func (r *Repository) ListBuku(ctx context.Context) ([]model.Buku, error) {
	query, args, err := r.selectBuku().OrderBy("b.id").ToSql()
	if err != nil {
		return nil, err
	}

	var rows []bukuRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return toBukus(rows), nil
}

func (r *Repository) GetBuku(ctx context.Context, id int) (model.Buku, error) {
	query, args, err := r.selectBuku().
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.Buku{}, err
	}

	var row bukuRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Buku{}, errs.ErrNotFound
		}
		return model.Buku{}, err
	}
	return row.toBuku(), nil
}

// SearchBuku matches judul or nama_buku, case-insensitive partial match.
func (r *Repository) SearchBuku(ctx context.Context, judul string) ([]model.Buku, error) {
	pattern := "%" + judul + "%"
	query, args, err := r.selectBuku().
		Where(sq.Or{
			sq.ILike{"b.judul": pattern},
			sq.ILike{"b.nama_buku": pattern},
		}).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []bukuRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return toBukus(rows), nil
}

func (r *Repository) ListBukuByKategori(ctx context.Context, kategoriID int) ([]model.Buku, error) {
	query, args, err := r.selectBuku().
		Where(sq.Eq{"b.kategori_id": kategoriID}).
		OrderBy("b.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []bukuRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	return toBukus(rows), nil
}

func (r *Repository) CreateBuku(ctx context.Context, req model.CreateBukuRequest) (model.Buku, error) {
	query, args, err := qb.Insert(bukuTableName).
		Columns("kategori_id", "nama_buku", "judul", "penulis", "penerbit", "tahun_penerbitan", "jumlah_tersedia").
		Values(req.KategoriID, req.NamaBuku, req.Judul, req.Penulis, req.Penerbit, req.TahunPenerbitan, req.JumlahTersedia).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Buku{}, err
	}

	// scan the written row itself, never re-read it
	var b model.Buku
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return model.Buku{}, errs.FieldError("kategori_id", "kategori tidak ditemukan")
		}
		r.log.Error("CreateBuku", zap.String("q", query), zap.Error(err))
		return model.Buku{}, err
	}

	k, err := r.GetKategori(ctx, b.KategoriID)
	if err != nil {
		return model.Buku{}, err
	}
	b.Kategori = &k
	return b, nil
}

func (r *Repository) UpdateBuku(ctx context.Context, id int, req model.UpdateBukuRequest) (model.Buku, error) {
	update := qb.Update(bukuTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if req.KategoriID != nil {
		update = update.Set("kategori_id", *req.KategoriID)
	}
	if req.NamaBuku != nil {
		update = update.Set("nama_buku", *req.NamaBuku)
	}
	if req.Judul != nil {
		update = update.Set("judul", *req.Judul)
	}
	if req.Penulis != nil {
		update = update.Set("penulis", *req.Penulis)
	}
	if req.Penerbit != nil {
		update = update.Set("penerbit", *req.Penerbit)
	}
	if req.TahunPenerbitan != nil {
		update = update.Set("tahun_penerbitan", *req.TahunPenerbitan)
	}
	if req.JumlahTersedia != nil {
		update = update.Set("jumlah_tersedia", *req.JumlahTersedia)
	}

	query, args, err := update.Suffix("returning *").ToSql()
	if err != nil {
		return model.Buku{}, err
	}

	var b model.Buku
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Buku{}, errs.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return model.Buku{}, errs.FieldError("kategori_id", "kategori tidak ditemukan")
		}
		return model.Buku{}, err
	}

	k, err := r.GetKategori(ctx, b.KategoriID)
	if err != nil {
		return model.Buku{}, err
	}
	b.Kategori = &k
	return b, nil
}

func (r *Repository) DeleteBuku(ctx context.Context, id int) error {
	query, args, err := qb.Delete(bukuTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}
