package validate_test

import (
	"testing"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/dimasfauzan/perpus-service/internal/model"
	"github.com/dimasfauzan/perpus-service/pkg/validate"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	cv := validate.NewCustomValidator()

	tests := []struct {
		name       string
		in         interface{}
		wantFields map[string]string
	}{
		{
			name: "ok",
			in: model.CreateAnggotaRequest{
				Nama:             "Budi",
				NomorTelepon:     "081234567890",
				Email:            "budi@mail.com",
				TanggalBergabung: "2024-01-15",
			},
		},
		{
			name: "required fields use json names",
			in:   model.CreateAnggotaRequest{},
			wantFields: map[string]string{
				"nama":              "wajib diisi",
				"nomor_telepon":     "wajib diisi",
				"email":             "wajib diisi",
				"tanggal_bergabung": "wajib diisi",
			},
		},
		{
			name: "bad date format",
			in: model.CreateAnggotaRequest{
				Nama:             "Budi",
				NomorTelepon:     "081234567890",
				Email:            "budi@mail.com",
				TanggalBergabung: "15-01-2024",
			},
			wantFields: map[string]string{
				"tanggal_bergabung": "format tanggal tidak valid, gunakan 2006-01-02",
			},
		},
		{
			name: "short password",
			in: model.RegisterRequest{
				NamaPetugas:  "Dimas",
				Posisi:       "Admin",
				NomorTelepon: "0812345678",
				Email:        "dimas@perpus.id",
				Password:     "abc",
			},
			wantFields: map[string]string{
				"password": "minimal 8 karakter",
			},
		},
		{
			name: "update skips absent fields",
			in:   model.UpdateAnggotaRequest{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := cv.Validate(tt.in)
			if tt.wantFields == nil {
				require.NoError(t, err)
				return
			}
			var vErr *errs.ValidationError
			require.True(t, errors.As(err, &vErr))
			require.Equal(t, tt.wantFields, vErr.Fields)
		})
	}
}
