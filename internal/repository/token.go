package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/pkg/errors"
)

// RotateToken revokes every live token of the petugas and issues a new
// one in the same transaction. Single active session per account.
func (r *Repository) RotateToken(ctx context.Context, petugasID int, tokenHash string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	revoke := fmt.Sprintf(`update %s set revoked_at = now() where petugas_id = $1 and revoked_at is null`, petugasTokenTableName)
	if _, err := tx.ExecContext(ctx, revoke, petugasID); err != nil {
		return err
	}

	insert := fmt.Sprintf(`insert into %s (petugas_id, token_hash) values ($1, $2)`, petugasTokenTableName)
	if _, err := tx.ExecContext(ctx, insert, petugasID, tokenHash); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetPetugasByToken(ctx context.Context, tokenHash string) (model.Petugas, error) {
	q := fmt.Sprintf(`
select p.id, p.nama_petugas, p.posisi, p.nomor_telepon, p.email, p.password_hash, p.created_at, p.updated_at
from %s t
join %s p on p.id = t.petugas_id
where t.token_hash = $1 and t.revoked_at is null`, petugasTokenTableName, petugasTableName)

	var p model.Petugas
	if err := r.db.GetContext(ctx, &p, q, tokenHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Petugas{}, errs.ErrInvalidToken
		}
		return model.Petugas{}, err
	}
	return p, nil
}

func (r *Repository) RevokeToken(ctx context.Context, tokenHash string) error {
	q := fmt.Sprintf(`update %s set revoked_at = now() where token_hash = $1 and revoked_at is null`, petugasTokenTableName)
	res, err := r.db.ExecContext(ctx, q, tokenHash)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrInvalidToken
	}
	return nil
}

func (r *Repository) RevokeAllTokens(ctx context.Context, petugasID int) error {
	q := fmt.Sprintf(`update %s set revoked_at = now() where petugas_id = $1 and revoked_at is null`, petugasTokenTableName)
	_, err := r.db.ExecContext(ctx, q, petugasID)
	return err
}
