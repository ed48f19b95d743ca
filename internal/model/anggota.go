package model

import (
	"time"
)

type Anggota struct {
	ID               int       `json:"id" db:"id"`
	Nama             string    `json:"nama" db:"nama"`
	NomorTelepon     string    `json:"nomor_telepon" db:"nomor_telepon"`
	Email            string    `json:"email" db:"email"`
	TanggalBergabung time.Time `json:"tanggal_bergabung" db:"tanggal_bergabung"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

type CreateAnggotaRequest struct {
	Nama             string `json:"nama" validate:"required,max=255"`
	NomorTelepon     string `json:"nomor_telepon" validate:"required,max=15"`
	Email            string `json:"email" validate:"required,email"`
	TanggalBergabung string `json:"tanggal_bergabung" validate:"required,datetime=2006-01-02"`
}

type UpdateAnggotaRequest struct {
	Nama             *string `json:"nama" validate:"omitempty,max=255"`
	NomorTelepon     *string `json:"nomor_telepon" validate:"omitempty,max=15"`
	Email            *string `json:"email" validate:"omitempty,email"`
	TanggalBergabung *string `json:"tanggal_bergabung" validate:"omitempty,datetime=2006-01-02"`
}
