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

var peminjamanColumns = []string{
	"id", "anggota_id", "buku_id", "petugas_id",
	"tanggal_peminjaman", "tanggal_pengembalian", "status", "created_at", "updated_at",
}

// peminjamanRow flattens the peminjamen x anggotas x bukus join used by
// the eager-loading list.
type peminjamanRow struct {
	model.Peminjaman

	AnggotaNama             string    `db:"a_nama"`
	AnggotaNomorTelepon     string    `db:"a_nomor_telepon"`
	AnggotaEmail            string    `db:"a_email"`
	AnggotaTanggalBergabung time.Time `db:"a_tanggal_bergabung"`
	AnggotaCreatedAt        time.Time `db:"a_created_at"`
	AnggotaUpdatedAt        time.Time `db:"a_updated_at"`

	BukuKategoriID      int       `db:"b_kategori_id"`
	BukuNamaBuku        string    `db:"b_nama_buku"`
	BukuJudul           string    `db:"b_judul"`
	BukuPenulis         string    `db:"b_penulis"`
	BukuPenerbit        string    `db:"b_penerbit"`
	BukuTahunPenerbitan time.Time `db:"b_tahun_penerbitan"`
	BukuJumlahTersedia  int       `db:"b_jumlah_tersedia"`
	BukuCreatedAt       time.Time `db:"b_created_at"`
	BukuUpdatedAt       time.Time `db:"b_updated_at"`
}

func (row peminjamanRow) toPeminjaman() model.Peminjaman {
	p := row.Peminjaman
	p.Anggota = &model.Anggota{
		ID:               p.AnggotaID,
		Nama:             row.AnggotaNama,
		NomorTelepon:     row.AnggotaNomorTelepon,
		Email:            row.AnggotaEmail,
		TanggalBergabung: row.AnggotaTanggalBergabung,
		CreatedAt:        row.AnggotaCreatedAt,
		UpdatedAt:        row.AnggotaUpdatedAt,
	}
	p.Buku = &model.Buku{
		ID:              p.BukuID,
		KategoriID:      row.BukuKategoriID,
		NamaBuku:        row.BukuNamaBuku,
		Judul:           row.BukuJudul,
		Penulis:         row.BukuPenulis,
		Penerbit:        row.BukuPenerbit,
		TahunPenerbitan: row.BukuTahunPenerbitan,
		JumlahTersedia:  row.BukuJumlahTersedia,
		CreatedAt:       row.BukuCreatedAt,
		UpdatedAt:       row.BukuUpdatedAt,
	}
	return p
}

func (r *Repository) ListPeminjaman(ctx context.Context) ([]model.Peminjaman, error) {
	query, args, err := qb.Select(
		"p.id", "p.anggota_id", "p.buku_id", "p.petugas_id",
		"p.tanggal_peminjaman", "p.tanggal_pengembalian", "p.status", "p.created_at", "p.updated_at",
		"a.nama as a_nama", "a.nomor_telepon as a_nomor_telepon", "a.email as a_email",
		"a.tanggal_bergabung as a_tanggal_bergabung", "a.created_at as a_created_at", "a.updated_at as a_updated_at",
		"b.kategori_id as b_kategori_id", "b.nama_buku as b_nama_buku", "b.judul as b_judul",
		"b.penulis as b_penulis", "b.penerbit as b_penerbit", "b.tahun_penerbitan as b_tahun_penerbitan",
		"b.jumlah_tersedia as b_jumlah_tersedia", "b.created_at as b_created_at", "b.updated_at as b_updated_at",
	).
		From(peminjamanTableName + " p").
		Join(fmt.Sprintf("%s a on a.id = p.anggota_id", anggotaTableName)).
		Join(fmt.Sprintf("%s b on b.id = p.buku_id", bukuTableName)).
		OrderBy("p.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []peminjamanRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	items := make([]model.Peminjaman, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toPeminjaman())
	}
	return items, nil
}

func (r *Repository) GetPeminjaman(ctx context.Context, id int) (model.Peminjaman, error) {
	query, args, err := qb.Select(peminjamanColumns...).
		From(peminjamanTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Peminjaman{}, err
	}

	var p model.Peminjaman
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Peminjaman{}, errs.ErrNotFound
		}
		return model.Peminjaman{}, err
	}
	return p, nil
}

// CreatePeminjaman runs the whole borrow workflow in one transaction:
// referential checks, conditional copy decrement, loan insert. The
// decrement only applies while jumlah_tersedia >= 1, so two loans racing
// for the last copy cannot both commit.
func (r *Repository) CreatePeminjaman(ctx context.Context, req model.CreatePeminjamanRequest) (model.Peminjaman, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Peminjaman{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	refs := []struct {
		table string
		field string
		id    int
	}{
		{anggotaTableName, "anggota_id", req.AnggotaID},
		{bukuTableName, "buku_id", req.BukuID},
		{petugasTableName, "petugas_id", req.PetugasID},
	}
	missing := make(map[string]string)
	for _, ref := range refs {
		var exists bool
		q := fmt.Sprintf(`select exists (select 1 from %s where id = $1)`, ref.table)
		if err := tx.GetContext(ctx, &exists, q, ref.id); err != nil {
			return model.Peminjaman{}, err
		}
		if !exists {
			missing[ref.field] = "tidak ditemukan"
		}
	}
	if len(missing) > 0 {
		return model.Peminjaman{}, errs.NewValidationError(missing)
	}

	decrement := fmt.Sprintf(`
update %s
    set jumlah_tersedia = jumlah_tersedia - 1,
        updated_at = now()
where id = $1 and jumlah_tersedia >= 1`, bukuTableName)
	res, err := tx.ExecContext(ctx, decrement, req.BukuID)
	if err != nil {
		return model.Peminjaman{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Peminjaman{}, errs.ErrBukuNotAvailable
	}

	var pengembalian interface{}
	if req.TanggalPengembalian != "" {
		pengembalian = req.TanggalPengembalian
	}
	query, args, err := qb.Insert(peminjamanTableName).
		Columns("anggota_id", "buku_id", "petugas_id", "tanggal_peminjaman", "tanggal_pengembalian", "status").
		Values(req.AnggotaID, req.BukuID, req.PetugasID, req.TanggalPeminjaman, pengembalian, req.Status).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Peminjaman{}, err
	}

	var p model.Peminjaman
	if err := tx.GetContext(ctx, &p, query, args...); err != nil {
		r.log.Error("CreatePeminjaman", zap.String("q", query), zap.Any("args", args))
		return model.Peminjaman{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Peminjaman{}, err
	}
	return p, nil
}
