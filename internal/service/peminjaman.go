package service

import (
	"context"

	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/internal/repository"
	"github.com/dimasfauzan/perpus-service/pkg/kafka"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Peminjaman struct {
	log     *zap.Logger
	repo    repository.PeminjamanRepository
	anggota repository.AnggotaRepository
	buku    repository.BukuRepository
	queue   Enqueuer
}

func NewPeminjaman(repo repository.PeminjamanRepository, anggota repository.AnggotaRepository, buku repository.BukuRepository, queue Enqueuer, log *zap.Logger) *Peminjaman {
	return &Peminjaman{
		log:     log.Named("peminjaman"),
		repo:    repo,
		anggota: anggota,
		buku:    buku,
		queue:   queue,
	}
}

func (s *Peminjaman) ListPeminjaman(ctx context.Context) ([]model.Peminjaman, error) {
	return s.repo.ListPeminjaman(ctx)
}

func (s *Peminjaman) CreatePeminjaman(ctx context.Context, req model.CreatePeminjamanRequest) (model.Peminjaman, error) {
	p, err := s.repo.CreatePeminjaman(ctx, req)
	if err != nil {
		return model.Peminjaman{}, err
	}

	// stats are best-effort, the loan is already committed
	if err := s.queue.Enqueue(kafka.PeminjamanTopic, model.PeminjamanEvent{
		PeminjamanID: p.ID,
		AnggotaID:    p.AnggotaID,
		BukuID:       p.BukuID,
		PetugasID:    p.PetugasID,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
	}); err != nil {
		s.log.Warn("enqueue peminjaman event", zap.Int("id", p.ID), zap.Error(err))
	}

	return p, nil
}

func (s *Peminjaman) GetPeminjaman(ctx context.Context, id int) (model.Peminjaman, error) {
	p, err := s.repo.GetPeminjaman(ctx, id)
	if err != nil {
		return model.Peminjaman{}, err
	}

	gg, gctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		a, err := s.anggota.GetAnggota(gctx, p.AnggotaID)
		if err != nil {
			return err
		}
		p.Anggota = &a
		return nil
	})
	gg.Go(func() error {
		b, err := s.buku.GetBuku(gctx, p.BukuID)
		if err != nil {
			return err
		}
		b.Kategori = nil
		p.Buku = &b
		return nil
	})
	if err := gg.Wait(); err != nil {
		return model.Peminjaman{}, err
	}
	return p, nil
}
