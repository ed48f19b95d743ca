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

var petugasColumns = []string{"id", "nama_petugas", "posisi", "nomor_telepon", "email", "password_hash", "created_at", "updated_at"}

func (r *Repository) ListPetugas(ctx context.Context) ([]model.Petugas, error) {
	query, args, err := qb.Select(petugasColumns...).
		From(petugasTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	items := make([]model.Petugas, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) CreatePetugas(ctx context.Context, req model.CreatePetugasRequest, passwordHash string) (model.Petugas, error) {
	query, args, err := qb.Insert(petugasTableName).
		Columns("nama_petugas", "posisi", "nomor_telepon", "email", "password_hash").
		Values(req.NamaPetugas, req.Posisi, req.NomorTelepon, req.Email, passwordHash).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Petugas{}, err
	}

	var p model.Petugas
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Petugas{}, errs.FieldError("email", "email sudah terdaftar")
		}
		r.log.Error("CreatePetugas", zap.String("q", query), zap.Error(err))
		return model.Petugas{}, err
	}
	return p, nil
}

// CreatePetugasWithToken inserts the account row and its first session
// token in one transaction. A failed token insert cannot leave behind a
// committed account without a token.
func (r *Repository) CreatePetugasWithToken(ctx context.Context, req model.CreatePetugasRequest, passwordHash, tokenHash string) (model.Petugas, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Petugas{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := qb.Insert(petugasTableName).
		Columns("nama_petugas", "posisi", "nomor_telepon", "email", "password_hash").
		Values(req.NamaPetugas, req.Posisi, req.NomorTelepon, req.Email, passwordHash).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Petugas{}, err
	}

	var p model.Petugas
	if err := tx.GetContext(ctx, &p, query, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Petugas{}, errs.FieldError("email", "email sudah terdaftar")
		}
		r.log.Error("CreatePetugasWithToken", zap.String("q", query), zap.Error(err))
		return model.Petugas{}, err
	}

	query, args, err = qb.Insert(petugasTokenTableName).
		Columns("petugas_id", "token_hash").
		Values(p.ID, tokenHash).
		ToSql()
	if err != nil {
		return model.Petugas{}, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return model.Petugas{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Petugas{}, err
	}
	return p, nil
}

func (r *Repository) GetPetugas(ctx context.Context, id int) (model.Petugas, error) {
	query, args, err := qb.Select(petugasColumns...).
		From(petugasTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Petugas{}, err
	}

	var p model.Petugas
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Petugas{}, errs.ErrNotFound
		}
		return model.Petugas{}, err
	}
	return p, nil
}

func (r *Repository) GetPetugasByEmail(ctx context.Context, email string) (model.Petugas, error) {
	query, args, err := qb.Select(petugasColumns...).
		From(petugasTableName).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return model.Petugas{}, err
	}

	var p model.Petugas
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Petugas{}, errs.ErrNotFound
		}
		return model.Petugas{}, err
	}
	return p, nil
}

func (r *Repository) UpdatePetugas(ctx context.Context, id int, req model.UpdatePetugasRequest) (model.Petugas, error) {
	update := qb.Update(petugasTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if req.NamaPetugas != nil {
		update = update.Set("nama_petugas", *req.NamaPetugas)
	}
	if req.Posisi != nil {
		update = update.Set("posisi", *req.Posisi)
	}
	if req.NomorTelepon != nil {
		update = update.Set("nomor_telepon", *req.NomorTelepon)
	}
	if req.Email != nil {
		update = update.Set("email", *req.Email)
	}

	query, args, err := update.Suffix("returning *").ToSql()
	if err != nil {
		return model.Petugas{}, err
	}

	var p model.Petugas
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Petugas{}, errs.ErrNotFound
		}
		if isUniqueViolation(err) {
			return model.Petugas{}, errs.FieldError("email", "email sudah terdaftar")
		}
		return model.Petugas{}, err
	}
	return p, nil
}

func (r *Repository) UpdatePetugasPassword(ctx context.Context, id int, passwordHash string) error {
	query, args, err := qb.Update(petugasTableName).
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("now()")).
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

func (r *Repository) DeletePetugas(ctx context.Context, id int) error {
	query, args, err := qb.Delete(petugasTableName).
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
