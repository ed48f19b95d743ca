package service

import (
	"context"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/internal/repository"
	"go.uber.org/zap"
)

type Kategori struct {
	log  *zap.Logger
	repo repository.KategoriRepository
}

func NewKategori(repo repository.KategoriRepository, log *zap.Logger) *Kategori {
	return &Kategori{
		log:  log.Named("kategori"),
		repo: repo,
	}
}

func (s *Kategori) ListKategori(ctx context.Context) ([]model.KategoriBuku, error) {
	return s.repo.ListKategori(ctx)
}

func (s *Kategori) CreateKategori(ctx context.Context, req model.CreateKategoriRequest) (model.KategoriBuku, error) {
	return s.repo.CreateKategori(ctx, req)
}

func (s *Kategori) GetKategori(ctx context.Context, id int) (model.KategoriBuku, error) {
	return s.repo.GetKategori(ctx, id)
}

func (s *Kategori) UpdateKategori(ctx context.Context, id int, req model.UpdateKategoriRequest) (model.KategoriBuku, error) {
	return s.repo.UpdateKategori(ctx, id, req)
}

func (s *Kategori) DeleteKategori(ctx context.Context, id int) error {
	return s.repo.DeleteKategori(ctx, id)
}
