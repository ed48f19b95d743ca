package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	repo_mocks "github.com/dimasfauzan/perpus-service/internal/repository/mocks"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func sha256hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Login must rotate: all prior tokens of the account die with the new
// issue, never a plain insert alongside them.
func TestAuth_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.LoginRequest{Email: "dimas@perpus.id", Password: "rahasia123"}
	stored := model.Petugas{ID: 3, NamaPetugas: "Dimas", Email: "dimas@perpus.id"}

	t.Run("ok, rotates token", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		petugas := repo_mocks.NewMockPetugasRepository(c)
		tokens := repo_mocks.NewMockTokenRepository(c)

		withHash := stored
		withHash.PasswordHash = mustHash(t, req.Password)
		petugas.EXPECT().GetPetugasByEmail(ctx, req.Email).Return(withHash, nil)

		var rotatedHash string
		tokens.EXPECT().
			RotateToken(ctx, stored.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, tokenHash string) error {
				rotatedHash = tokenHash
				return nil
			})

		s := service.NewAuth(petugas, tokens, zap.NewNop())
		p, token, err := s.Login(ctx, req)
		require.NoError(t, err)
		require.Equal(t, stored.ID, p.ID)
		require.NotEmpty(t, token)
		// only the sha256 of the issued token reaches storage
		require.Equal(t, sha256hex(token), rotatedHash)
	})

	t.Run("err. wrong password, no token issued", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		petugas := repo_mocks.NewMockPetugasRepository(c)
		tokens := repo_mocks.NewMockTokenRepository(c)

		withHash := stored
		withHash.PasswordHash = mustHash(t, "bukan-password-ini")
		petugas.EXPECT().GetPetugasByEmail(ctx, req.Email).Return(withHash, nil)

		s := service.NewAuth(petugas, tokens, zap.NewNop())
		_, _, err := s.Login(ctx, req)
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("err. unknown email", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		petugas := repo_mocks.NewMockPetugasRepository(c)
		tokens := repo_mocks.NewMockTokenRepository(c)

		petugas.EXPECT().GetPetugasByEmail(ctx, req.Email).Return(model.Petugas{}, errs.ErrNotFound)

		s := service.NewAuth(petugas, tokens, zap.NewNop())
		_, _, err := s.Login(ctx, req)
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestAuth_ChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.ChangePasswordRequest{
		CurrentPassword:         "rahasia123",
		NewPassword:             "rahasia456",
		NewPasswordConfirmation: "rahasia456",
	}

	t.Run("ok, revokes all tokens", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		petugas := repo_mocks.NewMockPetugasRepository(c)
		tokens := repo_mocks.NewMockTokenRepository(c)

		petugas.EXPECT().
			GetPetugas(ctx, 3).
			Return(model.Petugas{ID: 3, PasswordHash: mustHash(t, req.CurrentPassword)}, nil)
		petugas.EXPECT().
			UpdatePetugasPassword(ctx, 3, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, newHash string) error {
				require.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte(req.NewPassword)))
				return nil
			})
		tokens.EXPECT().RevokeAllTokens(ctx, 3).Return(nil)

		s := service.NewAuth(petugas, tokens, zap.NewNop())
		require.NoError(t, s.ChangePassword(ctx, 3, req))
	})

	// the strict mocks double as the assertion here: a wrong current
	// password must not reach UpdatePetugasPassword or RevokeAllTokens
	t.Run("err. wrong current password, nothing written", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		petugas := repo_mocks.NewMockPetugasRepository(c)
		tokens := repo_mocks.NewMockTokenRepository(c)

		petugas.EXPECT().
			GetPetugas(ctx, 3).
			Return(model.Petugas{ID: 3, PasswordHash: mustHash(t, "password-yang-benar")}, nil)

		s := service.NewAuth(petugas, tokens, zap.NewNop())
		err := s.ChangePassword(ctx, 3, req)
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	req := model.RegisterRequest{
		NamaPetugas:  "Dimas",
		Posisi:       "Admin",
		NomorTelepon: "0812345678",
		Email:        "dimas@perpus.id",
		Password:     "rahasia123",
	}

	c := gomock.NewController(t)
	defer c.Finish()
	petugas := repo_mocks.NewMockPetugasRepository(c)
	tokens := repo_mocks.NewMockTokenRepository(c)

	// account and first token go through the one transactional call
	var gotPasswordHash, gotTokenHash string
	petugas.EXPECT().
		CreatePetugasWithToken(ctx, model.CreatePetugasRequest{
			NamaPetugas:  req.NamaPetugas,
			Posisi:       req.Posisi,
			NomorTelepon: req.NomorTelepon,
			Email:        req.Email,
		}, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.CreatePetugasRequest, passwordHash, tokenHash string) (model.Petugas, error) {
			gotPasswordHash = passwordHash
			gotTokenHash = tokenHash
			return model.Petugas{ID: 3, NamaPetugas: req.NamaPetugas, Email: req.Email}, nil
		})

	s := service.NewAuth(petugas, tokens, zap.NewNop())
	p, token, err := s.Register(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 3, p.ID)
	require.NotEmpty(t, token)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(gotPasswordHash), []byte(req.Password)))
	require.Equal(t, sha256hex(token), gotTokenHash)
}
