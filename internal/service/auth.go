package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/internal/repository"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Auth struct {
	log     *zap.Logger
	petugas repository.PetugasRepository
	tokens  repository.TokenRepository
}

func NewAuth(petugas repository.PetugasRepository, tokens repository.TokenRepository, log *zap.Logger) *Auth {
	return &Auth{
		log:     log.Named("auth"),
		petugas: petugas,
		tokens:  tokens,
	}
}

// tokens are opaque; only the sha256 of the issued value is stored
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *Auth) Register(ctx context.Context, req model.RegisterRequest) (model.Petugas, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Petugas{}, "", errors.Wrap(err, "hash password")
	}

	// account row and first token commit together
	token := uuid.NewString()
	p, err := s.petugas.CreatePetugasWithToken(ctx, model.CreatePetugasRequest{
		NamaPetugas:  req.NamaPetugas,
		Posisi:       req.Posisi,
		NomorTelepon: req.NomorTelepon,
		Email:        req.Email,
	}, string(hash), hashToken(token))
	if err != nil {
		return model.Petugas{}, "", err
	}
	return p, token, nil
}

func (s *Auth) Login(ctx context.Context, req model.LoginRequest) (model.Petugas, string, error) {
	p, err := s.petugas.GetPetugasByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Petugas{}, "", errs.ErrInvalidCredentials
		}
		return model.Petugas{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)) != nil {
		return model.Petugas{}, "", errs.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.tokens.RotateToken(ctx, p.ID, hashToken(token)); err != nil {
		return model.Petugas{}, "", err
	}
	return p, token, nil
}

// Authenticate resolves a bearer token to its petugas. The returned hash
// identifies the presenting token, so logout can revoke just that one.
func (s *Auth) Authenticate(ctx context.Context, token string) (model.Petugas, string, error) {
	hash := hashToken(token)
	p, err := s.tokens.GetPetugasByToken(ctx, hash)
	if err != nil {
		return model.Petugas{}, "", err
	}
	return p, hash, nil
}

func (s *Auth) Logout(ctx context.Context, tokenHash string) error {
	return s.tokens.RevokeToken(ctx, tokenHash)
}

func (s *Auth) UpdateProfile(ctx context.Context, petugasID int, req model.UpdateProfileRequest) (model.Petugas, error) {
	return s.petugas.UpdatePetugas(ctx, petugasID, model.UpdatePetugasRequest{
		NamaPetugas:  req.NamaPetugas,
		Posisi:       req.Posisi,
		NomorTelepon: req.NomorTelepon,
		Email:        req.Email,
	})
}

func (s *Auth) ChangePassword(ctx context.Context, petugasID int, req model.ChangePasswordRequest) error {
	p, err := s.petugas.GetPetugas(ctx, petugasID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return errs.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	if err := s.petugas.UpdatePetugasPassword(ctx, petugasID, string(hash)); err != nil {
		return err
	}
	// force re-authentication everywhere
	return s.tokens.RevokeAllTokens(ctx, petugasID)
}
