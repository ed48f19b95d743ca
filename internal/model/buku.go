package model

import (
	"time"
)

type KategoriBuku struct {
	ID           int       `json:"id" db:"id"`
	NamaKategori string    `json:"nama_kategori" db:"nama_kategori"`
	Deskripsi    string    `json:"deskripsi" db:"deskripsi"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type Buku struct {
	ID              int           `json:"id" db:"id"`
	KategoriID      int           `json:"kategori_id" db:"kategori_id"`
	NamaBuku        string        `json:"nama_buku" db:"nama_buku"`
	Judul           string        `json:"judul" db:"judul"`
	Penulis         string        `json:"penulis" db:"penulis"`
	Penerbit        string        `json:"penerbit" db:"penerbit"`
	TahunPenerbitan time.Time     `json:"tahun_penerbitan" db:"tahun_penerbitan"`
	JumlahTersedia  int           `json:"jumlah_tersedia" db:"jumlah_tersedia"`
	Kategori        *KategoriBuku `json:"kategori,omitempty" db:"-"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

type CreateKategoriRequest struct {
	NamaKategori string `json:"nama_kategori" validate:"required,max=255"`
	Deskripsi    string `json:"deskripsi" validate:"required"`
}

type UpdateKategoriRequest struct {
	NamaKategori *string `json:"nama_kategori" validate:"omitempty,max=255"`
	Deskripsi    *string `json:"deskripsi" validate:"omitempty"`
}

type CreateBukuRequest struct {
	KategoriID      int    `json:"kategori_id" validate:"required"`
	NamaBuku        string `json:"nama_buku" validate:"required,max=255"`
	Judul           string `json:"judul" validate:"required,max=255"`
	Penulis         string `json:"penulis" validate:"required,max=255"`
	Penerbit        string `json:"penerbit" validate:"required,max=255"`
	TahunPenerbitan string `json:"tahun_penerbitan" validate:"required,datetime=2006-01-02"`
	JumlahTersedia  int    `json:"jumlah_tersedia" validate:"required,min=1"`
}

type UpdateBukuRequest struct {
	KategoriID      *int    `json:"kategori_id" validate:"omitempty"`
	NamaBuku        *string `json:"nama_buku" validate:"omitempty,max=255"`
	Judul           *string `json:"judul" validate:"omitempty,max=255"`
	Penulis         *string `json:"penulis" validate:"omitempty,max=255"`
	Penerbit        *string `json:"penerbit" validate:"omitempty,max=255"`
	TahunPenerbitan *string `json:"tahun_penerbitan" validate:"omitempty,datetime=2006-01-02"`
	JumlahTersedia  *int    `json:"jumlah_tersedia" validate:"omitempty,min=1"`
}
