package model

import (
	"time"
)

type Petugas struct {
	ID           int       `json:"id" db:"id"`
	NamaPetugas  string    `json:"nama_petugas" db:"nama_petugas"`
	Posisi       string    `json:"posisi" db:"posisi"`
	NomorTelepon string    `json:"nomor_telepon" db:"nomor_telepon"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type RegisterRequest struct {
	NamaPetugas  string `json:"nama_petugas" validate:"required,max=255"`
	Posisi       string `json:"posisi" validate:"required,max=255"`
	NomorTelepon string `json:"nomor_telepon" validate:"required,numeric"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	NamaPetugas  *string `json:"nama_petugas" validate:"omitempty,max=255"`
	Posisi       *string `json:"posisi" validate:"omitempty,max=255"`
	NomorTelepon *string `json:"nomor_telepon" validate:"omitempty,numeric"`
	Email        *string `json:"email" validate:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword         string `json:"current_password" validate:"required"`
	NewPassword             string `json:"new_password" validate:"required,min=8"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"required,eqfield=NewPassword"`
}

// CreatePetugasRequest is the catalog-management create, distinct from
// self-service Register. Password is optional here: a petugas created
// without one cannot log in until it is set.
type CreatePetugasRequest struct {
	NamaPetugas  string `json:"nama_petugas" validate:"required,max=255"`
	Posisi       string `json:"posisi" validate:"required,max=255"`
	NomorTelepon string `json:"nomor_telepon" validate:"required,numeric"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"omitempty,min=8"`
}

type UpdatePetugasRequest struct {
	NamaPetugas  *string `json:"nama_petugas" validate:"omitempty,max=255"`
	Posisi       *string `json:"posisi" validate:"omitempty,max=255"`
	NomorTelepon *string `json:"nomor_telepon" validate:"omitempty,numeric"`
	Email        *string `json:"email" validate:"omitempty,email"`
}
