package repository

import (
	"context"
	"database/sql"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
)

var kategoriColumns = []string{"id", "nama_kategori", "deskripsi", "created_at", "updated_at"}

func (r *Repository) ListKategori(ctx context.Context) ([]model.KategoriBuku, error) {
	query, args, err := qb.Select(kategoriColumns...).
		From(kategoriTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.KategoriBuku, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) CreateKategori(ctx context.Context, req model.CreateKategoriRequest) (model.KategoriBuku, error) {
	query, args, err := qb.Insert(kategoriTableName).
		Columns("nama_kategori", "deskripsi").
		Values(req.NamaKategori, req.Deskripsi).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.KategoriBuku{}, err
	}

	var k model.KategoriBuku
	if err := r.db.GetContext(ctx, &k, query, args...); err != nil {
		return model.KategoriBuku{}, err
	}
	return k, nil
}

func (r *Repository) GetKategori(ctx context.Context, id int) (model.KategoriBuku, error) {
	query, args, err := qb.Select(kategoriColumns...).
		From(kategoriTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.KategoriBuku{}, err
	}

	var k model.KategoriBuku
	if err := r.db.GetContext(ctx, &k, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.KategoriBuku{}, errs.ErrNotFound
		}
		return model.KategoriBuku{}, err
	}
	return k, nil
}

func (r *Repository) UpdateKategori(ctx context.Context, id int, req model.UpdateKategoriRequest) (model.KategoriBuku, error) {
	update := qb.Update(kategoriTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if req.NamaKategori != nil {
		update = update.Set("nama_kategori", *req.NamaKategori)
	}
	if req.Deskripsi != nil {
		update = update.Set("deskripsi", *req.Deskripsi)
	}

	query, args, err := update.Suffix("returning *").ToSql()
	if err != nil {
		return model.KategoriBuku{}, err
	}

	var k model.KategoriBuku
	if err := r.db.GetContext(ctx, &k, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.KategoriBuku{}, errs.ErrNotFound
		}
		return model.KategoriBuku{}, err
	}
	return k, nil
}

func (r *Repository) DeleteKategori(ctx context.Context, id int) error {
	query, args, err := qb.Delete(kategoriTableName).
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
