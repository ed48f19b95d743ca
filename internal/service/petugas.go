package service

import (
	"context"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Petugas struct {
	log  *zap.Logger
	repo repository.PetugasRepository
}

func NewPetugas(repo repository.PetugasRepository, log *zap.Logger) *Petugas {
	return &Petugas{
		log:  log.Named("petugas"),
		repo: repo,
	}
}

func (s *Petugas) ListPetugas(ctx context.Context) ([]model.Petugas, error) {
	return s.repo.ListPetugas(ctx)
}

func (s *Petugas) CreatePetugas(ctx context.Context, req model.CreatePetugasRequest) (model.Petugas, error) {
	// without a password the account exists in the catalog but cannot log in
	var passwordHash string
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.Petugas{}, errors.Wrap(err, "hash password")
		}
		passwordHash = string(hash)
	}
	return s.repo.CreatePetugas(ctx, req, passwordHash)
}

func (s *Petugas) GetPetugas(ctx context.Context, id int) (model.Petugas, error) {
	return s.repo.GetPetugas(ctx, id)
}

func (s *Petugas) UpdatePetugas(ctx context.Context, id int, req model.UpdatePetugasRequest) (model.Petugas, error) {
	return s.repo.UpdatePetugas(ctx, id, req)
}

func (s *Petugas) DeletePetugas(ctx context.Context, id int) error {
	return s.repo.DeletePetugas(ctx, id)
}
