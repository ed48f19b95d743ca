package model

import (
	"time"
)

type StatusPeminjaman string

const (
	StatusDipinjam     StatusPeminjaman = "dipinjam"
	StatusDikembalikan StatusPeminjaman = "dikembalikan"
)

type Peminjaman struct {
	ID                  int              `json:"id" db:"id"`
	AnggotaID           int              `json:"anggota_id" db:"anggota_id"`
	BukuID              int              `json:"buku_id" db:"buku_id"`
	PetugasID           int              `json:"petugas_id" db:"petugas_id"`
	TanggalPeminjaman   time.Time        `json:"tanggal_peminjaman" db:"tanggal_peminjaman"`
	TanggalPengembalian *time.Time       `json:"tanggal_pengembalian" db:"tanggal_pengembalian"`
	Status              StatusPeminjaman `json:"status" db:"status"`
	Anggota             *Anggota         `json:"anggota,omitempty" db:"-"`
	Buku                *Buku            `json:"buku,omitempty" db:"-"`
	CreatedAt           time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at" db:"updated_at"`
}

type CreatePeminjamanRequest struct {
	AnggotaID           int    `json:"anggota_id" validate:"required"`
	BukuID              int    `json:"buku_id" validate:"required"`
	PetugasID           int    `json:"petugas_id" validate:"required"`
	TanggalPeminjaman   string `json:"tanggal_peminjaman" validate:"required,datetime=2006-01-02"`
	TanggalPengembalian string `json:"tanggal_pengembalian" validate:"omitempty,datetime=2006-01-02"`
	Status              string `json:"status" validate:"required,oneof=dipinjam dikembalikan"`
}

// PeminjamanEvent is published to kafka after a loan commits.
type PeminjamanEvent struct {
	PeminjamanID int              `json:"peminjamanID"`
	AnggotaID    int              `json:"anggotaID"`
	BukuID       int              `json:"bukuID"`
	PetugasID    int              `json:"petugasID"`
	Status       StatusPeminjaman `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
}
