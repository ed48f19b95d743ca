package repository

import (
	"context"
	"database/sql"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"
)

var anggotaColumns = []string{"id", "nama", "nomor_telepon", "email", "tanggal_bergabung", "created_at", "updated_at"}

func (r *Repository) ListAnggota(ctx context.Context) ([]model.Anggota, error) {
	query, args, err := qb.Select(anggotaColumns...).
		From(anggotaTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.Anggota, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) CreateAnggota(ctx context.Context, req model.CreateAnggotaRequest) (model.Anggota, error) {
	query, args, err := qb.Insert(anggotaTableName).
		Columns("nama", "nomor_telepon", "email", "tanggal_bergabung").
		Values(req.Nama, req.NomorTelepon, req.Email, req.TanggalBergabung).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Anggota{}, err
	}

	var a model.Anggota
	if err := r.db.GetContext(ctx, &a, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Anggota{}, errs.FieldError("email", "email sudah terdaftar")
		}
		r.log.Error("CreateAnggota", zap.String("q", query), zap.Error(err))
		return model.Anggota{}, err
	}
	return a, nil
}

func (r *Repository) GetAnggota(ctx context.Context, id int) (model.Anggota, error) {
	query, args, err := qb.Select(anggotaColumns...).
		From(anggotaTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Anggota{}, err
	}

	var a model.Anggota
	if err := r.db.GetContext(ctx, &a, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Anggota{}, errs.ErrNotFound
		}
		return model.Anggota{}, err
	}
	return a, nil
}

func (r *Repository) UpdateAnggota(ctx context.Context, id int, req model.UpdateAnggotaRequest) (model.Anggota, error) {
	update := qb.Update(anggotaTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if req.Nama != nil {
		update = update.Set("nama", *req.Nama)
	}
	if req.NomorTelepon != nil {
		update = update.Set("nomor_telepon", *req.NomorTelepon)
	}
	if req.Email != nil {
		update = update.Set("email", *req.Email)
	}
	if req.TanggalBergabung != nil {
		update = update.Set("tanggal_bergabung", *req.TanggalBergabung)
	}

	query, args, err := update.Suffix("returning *").ToSql()
	if err != nil {
		return model.Anggota{}, err
	}

	var a model.Anggota
	if err := r.db.GetContext(ctx, &a, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Anggota{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Anggota{}, errs.FieldError("email", "email sudah terdaftar")
		}
		return model.Anggota{}, err
	}
	return a, nil
}

func (r *Repository) DeleteAnggota(ctx context.Context, id int) error {
	query, args, err := qb.Delete(anggotaTableName).
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
