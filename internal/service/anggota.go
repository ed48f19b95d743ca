package service

import (
	"context"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/internal/repository"
	"go.uber.org/zap"
)

type Anggota struct {
	log  *zap.Logger
	repo repository.AnggotaRepository
}

func NewAnggota(repo repository.AnggotaRepository, log *zap.Logger) *Anggota {
	return &Anggota{
		log:  log.Named("anggota"),
		repo: repo,
	}
}

func (s *Anggota) ListAnggota(ctx context.Context) ([]model.Anggota, error) {
	return s.repo.ListAnggota(ctx)
}

func (s *Anggota) CreateAnggota(ctx context.Context, req model.CreateAnggotaRequest) (model.Anggota, error) {
	return s.repo.CreateAnggota(ctx, req)
}

func (s *Anggota) GetAnggota(ctx context.Context, id int) (model.Anggota, error) {
	return s.repo.GetAnggota(ctx, id)
}

func (s *Anggota) UpdateAnggota(ctx context.Context, id int, req model.UpdateAnggotaRequest) (model.Anggota, error) {
	return s.repo.UpdateAnggota(ctx, id, req)
}

func (s *Anggota) DeleteAnggota(ctx context.Context, id int) error {
	return s.repo.DeleteAnggota(ctx, id)
}
