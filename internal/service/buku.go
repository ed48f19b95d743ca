package service

import (
	"context"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/internal/repository"
	"go.uber.org/zap"
)

type Buku struct {
	log  *zap.Logger
	repo repository.BukuRepository
}

func NewBuku(repo repository.BukuRepository, log *zap.Logger) *Buku {
	return &Buku{
		log:  log.Named("buku"),
		repo: repo,
	}
}

func (s *Buku) ListBuku(ctx context.Context) ([]model.Buku, error) {
	return s.repo.ListBuku(ctx)
}

func (s *Buku) CreateBuku(ctx context.Context, req model.CreateBukuRequest) (model.Buku, error) {
	return s.repo.CreateBuku(ctx, req)
}

func (s *Buku) GetBuku(ctx context.Context, id int) (model.Buku, error) {
	return s.repo.GetBuku(ctx, id)
}

func (s *Buku) UpdateBuku(ctx context.Context, id int, req model.UpdateBukuRequest) (model.Buku, error) {
	return s.repo.UpdateBuku(ctx, id, req)
}

func (s *Buku) DeleteBuku(ctx context.Context, id int) error {
	return s.repo.DeleteBuku(ctx, id)
}

// SearchBuku reports no matches as ErrNotFound, not an empty list.
func (s *Buku) SearchBuku(ctx context.Context, judul string) ([]model.Buku, error) {
	items, err := s.repo.SearchBuku(ctx, judul)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.ErrNotFound
	}
	return items, nil
}

func (s *Buku) ListBukuByKategori(ctx context.Context, kategoriID int) ([]model.Buku, error) {
	return s.repo.ListBukuByKategori(ctx, kategoriID)
}
